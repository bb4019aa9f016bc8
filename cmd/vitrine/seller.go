package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vitrine/pkg/domain"
)

func newSellerCmd(configPath *string) *cobra.Command {
	seller := &cobra.Command{
		Use:   "seller",
		Short: "Manage your own product listings",
	}
	seller.AddCommand(
		newSellerListCmd(configPath),
		newSellerCreateCmd(configPath),
		newSellerUpdateCmd(configPath),
		newSellerDeleteCmd(configPath),
		newSellerUploadCmd(configPath),
		newSellerDashboardCmd(configPath),
	)
	return seller
}

func printListings(out io.Writer, products []domain.Product) {
	if len(products) == 0 {
		fmt.Fprintln(out, "Nenhum produto cadastrado.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(out, "%6d  R$ %9.2f  estoque %-4d %s\n", p.ID, p.Price, p.Stock, p.Title)
	}
}

func newSellerListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your products",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			products, err := a.SellerProducts(cmd.Context())
			if err != nil {
				return err
			}
			printListings(cmd.OutOrStdout(), products)
			return nil
		},
	}
}

func draftFlags(cmd *cobra.Command, draft *domain.ProductDraft) {
	cmd.Flags().StringVar(&draft.Name, "name", "", "product name")
	cmd.Flags().StringVar(&draft.Category, "category", "", "category")
	cmd.Flags().StringVar(&draft.Price, "price", "", "price, e.g. 199.90")
	cmd.Flags().StringVar(&draft.Stock, "stock", "", "units in stock")
	cmd.Flags().StringVar(&draft.Description, "description", "", "description")
	cmd.Flags().StringVar(&draft.ImageURL, "image-url", "", "uploaded image URL (see `vitrine seller upload`)")
}

func newSellerCreateCmd(configPath *string) *cobra.Command {
	var draft domain.ProductDraft

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			products, err := a.CreateProduct(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Produto cadastrado.")
			printListings(cmd.OutOrStdout(), products)
			return nil
		},
	}
	draftFlags(cmd, &draft)
	return cmd
}

func newSellerUpdateCmd(configPath *string) *cobra.Command {
	var draft domain.ProductDraft

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Rewrite an existing listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			products, err := a.UpdateProduct(cmd.Context(), id, draft)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Produto atualizado.")
			printListings(cmd.OutOrStdout(), products)
			return nil
		},
	}
	draftFlags(cmd, &draft)
	return cmd
}

func newSellerDeleteCmd(configPath *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a listing (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			confirm := func() bool { return yes }
			if !yes {
				confirm = func() bool {
					fmt.Fprintf(cmd.OutOrStdout(), "Deseja excluir o produto %d? [s/N] ", id)
					scanner := bufio.NewScanner(cmd.InOrStdin())
					if !scanner.Scan() {
						return false
					}
					answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
					return answer == "s" || answer == "sim" || answer == "y"
				}
			}
			products, err := a.DeleteProduct(cmd.Context(), id, confirm)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Produto excluído.")
			printListings(cmd.OutOrStdout(), products)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func newSellerUploadCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <image-path>",
		Short: "Upload a product image and print its durable URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			url, err := a.UploadProductImage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}

func newSellerDashboardCmd(configPath *string) *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Inventory stats next to the public catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			data, err := a.Dashboard(cmd.Context(), search, category)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Produtos:       %d\n", data.Stats.TotalProducts)
			fmt.Fprintf(out, "Estoque baixo:  %d\n", data.Stats.LowStock)
			fmt.Fprintf(out, "Valor total:    R$ %.2f\n", data.Stats.TotalValue)
			fmt.Fprintf(out, "Catálogo geral: %d produtos\n", len(data.Catalog))
			fmt.Fprintln(out)
			printListings(out, data.Inventory)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "narrow the listing by name, brand or model")
	cmd.Flags().StringVar(&category, "category", "", "narrow the listing to one category")
	return cmd
}
