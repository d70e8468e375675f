package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/tonetint/internal/classifier"
	"github.com/dshills/tonetint/internal/web"
)

func newWebCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Run the browser demo",
		Long: `Serves a page with a text box, a model picker, a chunk size slider and color
pickers. The colored result can be downloaded as HTML or PDF.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Web.Addr = addr
			}

			model, err := a.newModel()
			if err != nil {
				return err
			}
			defer func() { _ = model.Close() }()

			server, err := web.NewServer(model, web.Options{
				Addr:     a.cfg.Web.Addr,
				Config:   a.cfg.Visualizer(),
				Models:   demoModels(model),
				Resolver: a.resolveModel,
				Logger:   a.logger,
			})
			if err != nil {
				return err
			}
			defer func() { _ = server.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from TONETINT_WEB_ADDR or 127.0.0.1:7860)")

	return cmd
}

// demoModels lists the model choices of the web form, the active model first
func demoModels(model classifier.Model) []string {
	models := []string{model.Model()}
	if model.Provider() != classifier.ProviderHuggingFace {
		return models
	}
	for _, m := range classifier.SuggestedModels {
		if m != model.Model() {
			models = append(models, m)
		}
	}
	return models
}

// resolveModel creates a model of the configured provider by name
func (a *app) resolveModel(name string) (classifier.Model, error) {
	opts := a.cfg.ClassifierOptions(a.logger)
	opts.Model = name
	return classifier.New(opts)
}
