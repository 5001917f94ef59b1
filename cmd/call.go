package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/nomics/filter"
	"github.com/s0up4200/nomics/nomics"
)

var (
	formatFlag string
	whereExpr  string
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call <endpoint> [param=value ...]",
	Short: "Call a Nomics endpoint",
	Long: `Call a Nomics endpoint by name or path and print the response.

Parameters are passed as param=value pairs and forwarded unchanged, for example:

  nomics call currencies-ticker ids=BTC,ETH interval=1d,30d
  nomics call candles currency=BTC interval=1d --format csv
  nomics call currencies-ticker --where 'num(price) > 1000'

Run "nomics endpoints" for the list of endpoints.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVar(&formatFlag, "format", "", "response format (json or csv)")
	callCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "only print array elements matching this expression")
}

func runCall(cmd *cobra.Command, args []string) error {
	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}
	if formatFlag != "" {
		params["format"] = formatFlag
	}

	var where *filter.Filter
	if whereExpr != "" {
		where, err = filter.Compile(whereExpr)
		if err != nil {
			return fmt.Errorf("invalid --where expression: %w", err)
		}
	}

	logger.Debug().Str("endpoint", args[0]).Int("params", len(params)).Msg("Calling endpoint")

	resp, err := client.CallEndpoint(cmd.Context(), args[0], params)
	if err != nil {
		return err
	}

	if err := writeResponse(cmd.OutOrStdout(), resp, where, cfg.Output.Pretty); err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("nomics API returned status %d", resp.StatusCode)
	}
	return nil
}

// parseParams turns param=value arguments into call parameters
func parseParams(args []string) (nomics.Params, error) {
	params := make(nomics.Params, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected param=value", arg)
		}
		params[name] = value
	}
	return params, nil
}

// writeResponse prints text responses verbatim and documents as JSON
func writeResponse(w io.Writer, resp *nomics.Response, where *filter.Filter, pretty bool) error {
	if resp.IsText() {
		if where != nil && resp.IsSuccess() {
			return fmt.Errorf("--where needs a JSON response, got text")
		}
		_, err := io.WriteString(w, resp.Body)
		if err == nil && !strings.HasSuffix(resp.Body, "\n") {
			_, err = io.WriteString(w, "\n")
		}
		return err
	}

	data := resp.Data
	if where != nil {
		matched, err := filter.Apply(data, where)
		if err != nil {
			return err
		}
		data = matched
	}

	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}
