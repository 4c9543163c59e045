// Command provision creates the Document AI processors the extractor routes to
// and writes their ids to a processor file.
package main

import (
	"context"
	"os"

	"realeagent/internal/extraction/documentai"
	"realeagent/internal/provisioning"
)

func main() {
	cmd := newRootCmd(func(ctx context.Context, location string) (provisioning.Client, error) {
		svc, err := documentai.NewService(ctx, location)
		if err != nil {
			return nil, err
		}
		return documentai.NewAdmin(svc), nil
	})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
