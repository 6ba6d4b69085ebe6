// Package s3 loads documents from Amazon S3.
//
// Names have the form "bucket/key". Objects are fetched with the SDK's
// multipart download manager into memory:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	src := s3.New(awss3.NewFromConfig(cfg), s3.WithConcurrency(8))
//	doc, err := src.Open(ctx, "corpus/2024/part-0001.txt")
package s3
