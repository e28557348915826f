package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"hpackd/internal/config"
	"hpackd/internal/helper"
	"hpackd/internal/hpack"
	"hpackd/internal/logging"
)

func main() {
	var configFile = flag.String("config", "", "config file")
	var input = flag.String("in", "", "file of \"name: value\" header lines (default: stdin)")

	flag.Parse()

	if *configFile == "" {
		panic("Config file arg is required!")
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		panic(fmt.Errorf("failed to load config: %v", err))
	}

	logger, err := logging.NewDefaultLogger(logging.LogLevel(cfg.Logger.Level), cfg.Logger.File)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %v", err))
	}

	in := os.Stdin
	if *input != "" {
		in, err = os.Open(*input)
		if err != nil {
			panic(fmt.Errorf("failed to open input file: %v", err))
		}
		defer in.Close()
	}

	fields, err := helper.ReadHeaderFields(in)
	if err != nil {
		fmt.Printf("failed to read header fields: %v", err)
		return
	}

	enc := hpack.NewEncoder(cfg.Encoder.MaxDynamicTableSize)
	enc.SetLogger(logger)

	dest := make([]byte, 4096)
	sess, n, done, err := enc.BeginEncode(fields, dest, true)
	for !done {
		if err != nil {
			fmt.Printf("failed to encode header block: %v", err)
			return
		}
		logger.Log(logging.LogLevelInfo, "wrote %d bytes, buffer exhausted before block finished", n)
		fmt.Print(hex.EncodeToString(dest[:n]))
		n, done, err = enc.Encode(sess, dest, true)
	}
	if err != nil {
		fmt.Printf("failed to encode header block: %v", err)
		return
	}

	fmt.Println(hex.EncodeToString(dest[:n]))
	logger.Log(logging.LogLevelInfo, "encoded %d header fields", len(fields))
}
