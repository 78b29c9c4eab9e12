//go:build !unix

package mwmap

import "os"

func mapFile(path string) ([]byte, func([]byte) error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, nil, nil
}

func bytesToString(b []byte) string {
	return string(b)
}
