package controllers

import (
	"encoding/base64"
	"io"
	"mime/multipart"
)

// encodeImageFile returns the standard base64 encoding of the uploaded file's
// bytes. A missing or empty file part encodes to the empty string, which the
// edit flow treats as "payload unchanged".
func encodeImageFile(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", nil
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
