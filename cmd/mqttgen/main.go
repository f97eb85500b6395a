// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// mqttgen encodes MQTT control packets described in a YAML file and prints
// them as hex dumps, or concatenates their raw bytes into an output file.
// It is useful for producing test vectors and seeding broker test corpora.
//
// Example generation file:
//
//	packets:
//	  - type: connect
//	    version: 5
//	    client_id: bench-1
//	    keep_alive: 30
//	    properties:
//	      - id: 0x21
//	        uint: 10
//	  - type: publish
//	    topic: sensors/temp
//	    qos: 1
//	    id: 7
//	    payload: "22.5"
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/absmach/mqttwire/packets"
)

func main() {
	var (
		specPath = flag.String("f", "packets.yaml", "packet generation file")
		outPath  = flag.String("o", "", "write raw packet bytes to file instead of hex dump")
		debug    = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *specPath, *outPath); err != nil {
		logger.Error("Generation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, specPath, outPath string) error {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return err
	}

	var file genFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", specPath, err)
	}
	if len(file.Packets) == 0 {
		return fmt.Errorf("%s contains no packets", specPath)
	}

	var out *os.File
	if outPath != "" {
		if out, err = os.Create(outPath); err != nil {
			return err
		}
		defer out.Close()
	}

	for i, spec := range file.Packets {
		pkt, err := spec.build()
		if err != nil {
			return fmt.Errorf("packet %d: %w", i, err)
		}
		buf, err := packets.Encode(pkt)
		if err != nil {
			return fmt.Errorf("packet %d (%s): %w", i, spec.Type, err)
		}
		logger.Debug("Encoded packet", "index", i, "packet", pkt.String(), "size", len(buf))

		if out != nil {
			if _, err := out.Write(buf); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("# %d: %s (%d bytes)\n%s", i, pkt, len(buf), hex.Dump(buf))
	}

	if out != nil {
		logger.Info("Wrote packets", "count", len(file.Packets), "file", outPath)
	}
	return nil
}
