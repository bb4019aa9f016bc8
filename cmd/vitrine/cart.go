package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vitrine/internal/app"
	"vitrine/pkg/domain"
)

// newCartCmd opens an interactive cart session: the cart lives in
// memory for the duration of the run, exactly like the screen it
// replaces.
func newCartCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Interactive cart session over the current catalog",
		Long: "Starts an interactive session. Commands:\n" +
			"  add <product-id>     add one unit (merges with an existing entry)\n" +
			"  remove <product-id>  drop the entry\n" +
			"  show                 list entries and the running total\n" +
			"  clear                empty the cart\n" +
			"  quit                 leave",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*configPath)
			if err != nil {
				return err
			}
			products, err := a.Products(cmd.Context(), "")
			if err != nil {
				return err
			}
			byID := make(map[int64]domain.Product, len(products))
			for _, p := range products {
				byID[p.ID] = p
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d produtos no catálogo. Digite `show`, `add <id>`, `remove <id>`, `clear` ou `quit`.\n", len(products))

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				fields := strings.Fields(scanner.Text())
				if len(fields) == 0 {
					continue
				}
				switch fields[0] {
				case "quit", "exit":
					return nil
				case "show":
					printCart(out, a)
				case "clear":
					a.Cart().Clear()
					fmt.Fprintln(out, "Carrinho esvaziado.")
				case "add", "remove":
					if len(fields) != 2 {
						fmt.Fprintf(out, "uso: %s <product-id>\n", fields[0])
						continue
					}
					id, err := strconv.ParseInt(fields[1], 10, 64)
					if err != nil {
						fmt.Fprintln(out, "id inválido")
						continue
					}
					if fields[0] == "remove" {
						if removed := cartHas(a, id); removed {
							a.Cart().Remove(id)
							fmt.Fprintln(out, "Removido.")
						} else {
							fmt.Fprintln(out, "não estava no carrinho")
						}
						continue
					}
					product, ok := byID[id]
					if !ok {
						fmt.Fprintln(out, "produto não encontrado no catálogo")
						continue
					}
					a.Cart().Add(product)
					fmt.Fprintf(out, "%s adicionado.\n", product.Title)
				default:
					fmt.Fprintf(out, "comando desconhecido: %s\n", fields[0])
				}
			}
		},
	}
}

func cartHas(a *app.App, id int64) bool {
	for _, e := range a.Cart().Items() {
		if e.Product.ID == id {
			return true
		}
	}
	return false
}

func printCart(out io.Writer, a *app.App) {
	items := a.Cart().Items()
	if len(items) == 0 {
		fmt.Fprintln(out, "Carrinho vazio.")
		return
	}
	for _, e := range items {
		fmt.Fprintf(out, "%6d  x%-3d R$ %9.2f  %s\n", e.Product.ID, e.Quantity, e.Subtotal(), e.Product.Title)
	}
	fmt.Fprintf(out, "Total: R$ %.2f\n", a.Cart().Total())
}
