package imagegen

import (
	"bytes"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"
)

func TestGenerateShareCard(t *testing.T) {
	data, err := GenerateShareCard(ShareCardData{
		City:        "New york",
		Temperature: "24°C",
		Condition:   "Partly Cloudy",
		Background:  "#0f0f1a",
		Accent:      "#4fc3f7",
	})
	if err != nil {
		t.Fatalf("GenerateShareCard: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != CardWidth || b.Dy() != CardHeight {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), CardWidth, CardHeight)
	}
}

func TestGenerateShareCard_Concurrent(t *testing.T) {
	data := ShareCardData{
		City:        "Tokyo",
		Temperature: "75°F",
		Condition:   "Partly Cloudy",
		Background:  "#eceff3",
		Accent:      "#3a80c0",
	}
	want, err := GenerateShareCard(data)
	if err != nil {
		t.Fatalf("GenerateShareCard: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16*4)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 4 {
				got, err := GenerateShareCard(data)
				if err != nil {
					errs <- err
					return
				}
				if !bytes.Equal(got, want) {
					t.Error("concurrent render differs from serial render")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("GenerateShareCard: %v", err)
	}
}

func TestGenerateShareCard_BadColors(t *testing.T) {
	if _, err := GenerateShareCard(ShareCardData{City: "X", Background: "nope", Accent: "#12"}); err != nil {
		t.Fatalf("bad colors should fall back, got %v", err)
	}
}

func TestParseHex(t *testing.T) {
	c, err := parseHex("#ff7043")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0xff || c.G != 0x70 || c.B != 0x43 || c.A != 0xff {
		t.Errorf("parseHex = %+v", c)
	}
	for _, bad := range []string{"", "#fff", "#gggggg"} {
		if _, err := parseHex(bad); err == nil {
			t.Errorf("parseHex(%q) expected error", bad)
		}
	}
}

func TestTextColor(t *testing.T) {
	light := textColor(parseMust(t, "#f5f0e8"))
	dark := textColor(parseMust(t, "#0f0f1a"))
	if light.R > 100 {
		t.Errorf("light background should get dark text, got %+v", light)
	}
	if dark.R < 200 {
		t.Errorf("dark background should get light text, got %+v", dark)
	}
}

func parseMust(t *testing.T, s string) color.RGBA {
	t.Helper()
	c, err := parseHex(s)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestShareCardCache(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewShareCardCache(time.Minute)
	c.now = func() time.Time { return now }

	if _, ok := c.Get("london"); ok {
		t.Fatal("empty cache returned a hit")
	}

	c.Set("london", []byte("png"))
	if data, ok := c.Get("london"); !ok || string(data) != "png" {
		t.Fatalf("Get = %q, %v", data, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("london"); ok {
		t.Error("expired entry returned")
	}

	c.Set("paris", []byte("png"))
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1 after expired entries dropped", c.Len())
	}
}
