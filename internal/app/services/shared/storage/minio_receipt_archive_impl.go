package storage

import (
	"bytes"
	"context"

	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

type minioReceiptArchive struct {
	minioClient *minio.Client
	bucketName  string
}

func NewMinioReceiptArchive(minioClient *minio.Client, bucketName string) ReceiptArchive {
	return &minioReceiptArchive{
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

func (m *minioReceiptArchive) ArchiveReceipt(ctx context.Context, billNumber string, receipt interface{}) (string, error) {
	data, err := json.Marshal(receipt)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := billNumber + constvars.ReceiptFileExtension
	_, err = m.minioClient.PutObject(
		ctx,
		m.bucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: constvars.MIMEApplicationJSON},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.bucketName)
	}

	return objectName, nil
}
