package watermark

import (
	"errors"
	"testing"
)

func TestOutputPath(t *testing.T) {
	testCase := []struct {
		src  string
		want string
		err  error
	}{
		{"photo.jpg", "photo_wtm.jpg", nil},
		{"/home/me/photo.png", "/home/me/photo_wtm.png", nil},
		{"/a/b/photo.v2.jpg", "/a/b/photo.v2_wtm.jpg", nil},
		{"C:/pics/IMG_0001.JPG", "C:/pics/IMG_0001_wtm.JPG", nil},
		{"photo", "", ErrNoExtension},
		{"/a.b/photo", "", ErrNoExtension},
		{".hidden", "", ErrNoExtension},
		{"photo.", "", ErrNoExtension},
		{"", "", ErrNoExtension},
	}
	for _, tc := range testCase {
		got, err := OutputPath(tc.src, DefaultSuffix)
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: err = %v, want %v", tc.src, err, tc.err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("/home/me/photo_wtm.jpg"); got != "photo_wtm.jpg" {
		t.Fatalf("got %q", got)
	}
}
