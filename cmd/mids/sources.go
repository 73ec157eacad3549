package main

import (
	"context"
	"fmt"
	"strconv"

	"mids/internal/model"
	"mids/internal/record"
)

type recordSource struct {
	suffix string
	arg    string
	noun   string
	load   source
}

var sources = []recordSource{
	{suffix: "file", arg: "<path>", noun: "a JSON file", load: fromFile},
	{suffix: "url", arg: "<url>", noun: "a JSON document at a URL", load: fromURL},
	{suffix: "gbif", arg: "<occurrence-id>", noun: "a GBIF occurrence", load: fromGBIF},
}

func fromFile(_ context.Context, _ *record.Client, path string) (model.Record, error) {
	return record.LoadFile(path)
}

func fromURL(ctx context.Context, c *record.Client, u string) (model.Record, error) {
	return c.FetchURL(ctx, u)
}

func fromGBIF(ctx context.Context, c *record.Client, arg string) (model.Record, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid GBIF occurrence id %q", arg)
	}

	return c.FetchGBIF(ctx, id)
}
