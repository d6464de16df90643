// Package publish renders element trees and stores the markup in a sink.
//
// Two sinks are provided: FileSink writes under a local directory and
// S3Sink uploads to an S3 bucket with aws-sdk-go-v2.
//
//	sink := publish.NewS3Sink(publish.NewS3Client(publish.S3ClientConfig{
//	    Region: "eu-central-1",
//	}), "my-site", "pages/")
//	p := publish.New(renderer, sink)
//	key, err := p.Publish(ctx, "index.html", root)
package publish
