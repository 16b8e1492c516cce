package corpus

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// FetchBundleFromS3 downloads and parses a corpus bundle object. Deployments
// that rebuild the corpus publish a new bundle object; the version inside the
// artifact travels with it.
func FetchBundleFromS3(ctx context.Context, bucket, key string) (*Bundle, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bundle s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle body: %w", err)
	}

	bundle, err := ParseBundle(data)
	if err != nil {
		return nil, err
	}

	log.Printf("Fetched corpus bundle version %s (%d recipes) from s3://%s/%s",
		bundle.Version, len(bundle.Recipes), bucket, key)
	return bundle, nil
}
