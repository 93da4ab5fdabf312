package utils

import "testing"

func TestAllowedImage(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.gif", true},
		{"PHOTO.PNG", true},
		{"archive.zip", false},
		{"script.php", false},
		{"noextension", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := AllowedImage(tc.filename); got != tc.want {
			t.Errorf("AllowedImage(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}
