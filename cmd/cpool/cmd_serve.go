package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dhamidi/cpool/server"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve class file decoding over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(opts.cfg.Format)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			log.Infof("listening on http://%s", displayAddr)
			fmt.Printf("Starting server at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, srv)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")

	return cmd
}
