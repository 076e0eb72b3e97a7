package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// DownloadHistory fetches a tournament history file from url and writes it
// to destPath, mirroring original_source/sim.py's
// urllib.request.urlretrieve(args.url, filename) call.
func DownloadHistory(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return nil
}
