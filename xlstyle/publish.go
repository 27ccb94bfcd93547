// Copyright 2026 Tamas Gulacsi. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// publish uploads the file at path to bucket/key.
// Credentials come from the default AWS chain (env, shared config, IAM role).
func publish(ctx context.Context, path, bucket, key string) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	logger.Info("Uploading to S3", "local", path, "bucket", bucket, "key", key)
	_, err = s3.NewFromConfig(cfg).PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        fh,
		ContentType: aws.String(xlsxContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to s3://%s/%s: %w", path, bucket, key, err)
	}
	return nil
}
