package utils

import "testing"

func TestIsValidUrl(t *testing.T) {
	valid := []string{
		"https://example.com/logo.svg",
		"http://example.com",
	}
	for _, uri := range valid {
		if !IsValidUrl(uri) {
			t.Errorf("%q expected to be a valid url", uri)
		}
	}

	invalid := []string{
		"",
		"logo.svg",
		"/tmp/logo.svg",
		"example.com/logo.svg",
	}
	for _, uri := range invalid {
		if IsValidUrl(uri) {
			t.Errorf("%q expected to be an invalid url", uri)
		}
	}
}
