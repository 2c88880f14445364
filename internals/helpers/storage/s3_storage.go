package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AvatarStore guarda fotos de perfil em um backend compatível com S3
// (AWS ou MinIO). Um bucket só; a chave do objeto é o caminho direto.
type AvatarStore struct {
	client  *s3.Client
	bucket  string
	baseURL *url.URL
}

type Config struct {
	Region          string
	Bucket          string
	Endpoint        string // opcional, habilita MinIO/local
	AccessKeyID     string // opcional, cai na cadeia padrão se vazio
	SecretAccessKey string
	PathStyle       bool
}

// New monta o cliente S3 a partir da Config.
func New(ctx context.Context, cfg Config) (*AvatarStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket do avatar obrigatório")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	var base *url.URL
	if cfg.Endpoint != "" {
		if u, err := url.Parse(cfg.Endpoint); err == nil {
			base = u
		}
	}
	return &AvatarStore{client: client, bucket: cfg.Bucket, baseURL: base}, nil
}

// OpenFromEnv lê a configuração do ambiente. Devolve (nil, nil) quando o
// bucket não está configurado: avatar vira recurso opcional, não erro.
func OpenFromEnv(ctx context.Context) (*AvatarStore, error) {
	bucket := os.Getenv("AVATAR_S3_BUCKET")
	if bucket == "" {
		return nil, nil
	}
	return New(ctx, Config{
		Bucket:          bucket,
		Region:          os.Getenv("AVATAR_S3_REGION"),
		Endpoint:        os.Getenv("AVATAR_S3_ENDPOINT"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		PathStyle:       strings.EqualFold(os.Getenv("AVATAR_S3_PATH_STYLE"), "true"),
	})
}

// Put grava o objeto e devolve a URL pública estimada.
func (s *AvatarStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	input := &s3.PutObjectInput{Bucket: &s.bucket, Key: &key, Body: r}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *AvatarStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &key})
	return err
}

// PublicURL monta a URL do objeto: endpoint explícito (path style) quando
// configurado, senão o host virtual padrão da AWS.
func (s *AvatarStore) PublicURL(key string) string {
	if s.baseURL != nil {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.baseURL.String(), "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

// KeyFromURL faz o caminho inverso de PublicURL. Devolve "" quando a URL
// não pertence a este bucket.
func (s *AvatarStore) KeyFromURL(raw string) string {
	prefix := s.PublicURL("")
	if raw == prefix || !strings.HasPrefix(raw, prefix) {
		return ""
	}
	return strings.TrimPrefix(raw, prefix)
}
