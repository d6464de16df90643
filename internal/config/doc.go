// Package config provides configuration parsing for the markup CLI.
//
// The configuration is stored in markup.json. This package handles
// loading, saving, and validating it.
//
// # Configuration File Structure
//
//	{
//	  "logLevel": "info",
//	  "render": {
//	    "maxDepth": 256,
//	    "detectCycles": true,
//	    "doctype": true
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 3030,
//	    "dir": "pages"
//	  },
//	  "publish": {
//	    "sink": "s3",
//	    "bucket": "my-site",
//	    "prefix": "pages/",
//	    "region": "eu-central-1"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "markup"
//	  }
//	}
//
// Missing fields keep their defaults (see New).
package config
