package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProductsCmd(configPath *string) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			products, err := a.Products(cmd.Context(), search)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(products) == 0 {
				fmt.Fprintln(out, "Nenhum produto encontrado.")
				return nil
			}
			for _, p := range products {
				fmt.Fprintf(out, "%6d  R$ %9.2f  %s\n", p.ID, p.Price, p.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by title, brand or model")
	return cmd
}
