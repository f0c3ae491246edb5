package cli

import (
	"github.com/bodhi-os/bodhi/internal/server"
)

// ServeCmd runs the HTTP API.
type ServeCmd struct {
	Addr string `help:"Listen address." default:":8080"`
}

func (cmd *ServeCmd) Run(ctx *Context) error {
	secret, err := ctx.SessionSecret()
	if err != nil {
		return err
	}

	store, err := ctx.Store()
	if err != nil {
		return err
	}
	if err := store.Init(); err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(server.Config{
		Store:         store,
		SessionSecret: secret,
		Debug:         ctx.Debug,
	})
	return srv.Run(cmd.Addr)
}
