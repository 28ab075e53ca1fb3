package photo

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/disintegration/imaging"
)

// Processor нормализует фотографии профиля перед отправкой на бэкенд
type Processor struct {
	maxFileSize  int64
	maxDimension int
}

// NewProcessor создает новый обработчик фотографий
func NewProcessor(maxFileSize int64, maxDimension int) *Processor {
	return &Processor{
		maxFileSize:  maxFileSize,
		maxDimension: maxDimension,
	}
}

// FromUpload читает загруженный файл, уменьшает изображение и возвращает
// base64 для поля photoBase64
func (p *Processor) FromUpload(file *multipart.FileHeader) (string, error) {
	// Проверяем размер файла
	if file.Size > p.maxFileSize {
		return "", fmt.Errorf("file size exceeds maximum allowed size")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return p.encode(data)
}

// encode декодирует изображение, вписывает его в ограничение по стороне
// и перекодирует в JPEG base64
func (p *Processor) encode(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	// Вписываем в квадрат maxDimension, пропорции сохраняются
	resized := imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
