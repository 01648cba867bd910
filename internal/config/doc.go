// Package config loads the cells.json file used by the cells command.
//
// # Configuration File Structure
//
//	{
//	  "executor": {
//	    "kind": "pool",
//	    "workers": 4,
//	    "queue": 64
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "cells"
//	  },
//	  "tracing": {
//	    "enabled": false
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
//
// Missing fields take the defaults of New.
//
// # Usage
//
//	cfg, err := config.LoadFile("cells.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger := cfg.Logger(os.Stderr)
package config
