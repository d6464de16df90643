package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/pkg/publish"
)

func publishCmd(a *app) *cobra.Command {
	var (
		sink   string
		key    string
		dir    string
		bucket string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "publish FILE...",
		Short: "Render tree documents and publish them",
		Long: `Render tree documents as full HTML documents and store them in the
configured sink: a local directory ("file") or an S3 bucket ("s3").

Each document is stored under its base name with an .html extension
unless --key is given. S3 credentials are read from AWS_ACCESS_KEY_ID,
AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.

Examples:
  markup publish index.yaml about.yaml
  markup publish --sink=s3 --bucket=site --prefix=pages/ index.yaml
  markup publish --key=landing/v2 landing.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return argsError("publish expects at least one tree document")
			}
			if key != "" && len(args) > 1 {
				return argsError("--key can only be used with a single document")
			}

			pc := a.cfg.Publish
			if sink != "" {
				pc.Sink = sink
			}
			if dir != "" {
				pc.Dir = dir
			}
			if bucket != "" {
				pc.Bucket = bucket
			}
			if prefix != "" {
				pc.Prefix = prefix
			}

			target, err := newSink(a.cfg, pc, dir != "")
			if err != nil {
				return err
			}
			publisher := publish.New(a.renderer(-1), target).WithLogger(a.logger)

			for _, file := range args {
				root, err := readTree(cmd, file)
				if err != nil {
					return err
				}
				k := key
				if k == "" {
					k = docName(file)
				}
				stored, err := publisher.Publish(cmd.Context(), k, root)
				if err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "Published %s → %s", file, stored)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sink, "sink", "", `Sink: "file" or "s3" (default from markup.json)`)
	cmd.Flags().StringVarP(&key, "key", "k", "", "Key of the published document")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory of the file sink")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")

	return cmd
}

// newSink validates pc and builds the sink it names. A dir given on the
// command line is used as is; the configured dir is relative to
// markup.json.
func newSink(cfg *config.Config, pc config.PublishConfig, dirFromFlag bool) (publish.Sink, error) {
	if err := pc.Validate(); err != nil {
		return nil, err
	}
	if pc.Sink == config.SinkS3 {
		client := publish.NewS3Client(publish.S3ClientConfig{
			Region:   pc.Region,
			Endpoint: pc.Endpoint,
		})
		return publish.NewS3Sink(client, pc.Bucket, pc.Prefix), nil
	}

	d := pc.Dir
	if !dirFromFlag {
		d = cfg.PublishDir()
	}
	fs, err := publish.NewFileSink(d)
	if err != nil {
		return nil, err
	}
	return fs, nil
}
