package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// DownloadSVG retrieves a vector source over HTTP and
// saves it into a temporary file.
func DownloadSVG(uri string) (string, error) {
	res, err := http.Get(uri)
	if err != nil {
		return "", fmt.Errorf("unable to download the vector source from URI %s: %w", uri, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unable to download the vector source from URI %s: status %v", uri, res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("unable to read the response body: %w", err)
	}

	tmpfile, err := os.CreateTemp("", "icongen-*.svg")
	if err != nil {
		return "", fmt.Errorf("unable to create a temporary file: %w", err)
	}

	if _, err := tmpfile.Write(data); err != nil {
		tmpfile.Close()
		return "", fmt.Errorf("unable to save the vector source: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return "", err
	}

	ctype, err := DetectContentType(tmpfile.Name())
	if err != nil {
		return "", err
	}
	if !strings.Contains(ctype, "xml") && !strings.Contains(ctype, "svg") &&
		!strings.Contains(ctype, "text/plain") {
		os.Remove(tmpfile.Name())
		return "", fmt.Errorf("the downloaded file is not a valid vector source")
	}

	return tmpfile.Name(), nil
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	if _, err := url.ParseRequestURI(uri); err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

// DetectContentType detects the file type by reading MIME type information of the file content.
func DetectContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer file.Close()

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(buffer[:n]), nil
}
