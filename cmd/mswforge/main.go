package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mswforge/mswforge/internal/mockgen"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "mswforge",
		Short: "mswforge - Generate mock data and MSW handlers from schemas",
		Long: `A command-line tool that turns a flat schema (or the first response
schema of an OpenAPI document) into synthetic JSON records and a ready-to-use
MSW (Mock Service Worker) handler module.

mswforge provides:
  - Schema-driven record generation (uuid, string, email, number, date tags)
  - OpenAPI document reduction (.json and .yaml) to a flat schema
  - MSW v2 handler snippet and pretty-printed JSON data exports`,
	}

	rootCmd.AddCommand(createGenerateCmd())
	rootCmd.AddCommand(createConvertCmd())
	rootCmd.AddCommand(createInspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func createGenerateCmd() *cobra.Command {
	var (
		schemaText  string
		schemaFile  string
		openapiFile string
		count       int
		method      string
		endpoint    string
		outDir      string
		seed        uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate mock records and an MSW handler module",
		Long: `Generate synthetic records from a schema and write two artifacts to the
output directory: a pretty-printed JSON data file and an MSW handler module.

The schema comes from exactly one of --schema, --schema-file, or --openapi.
With --openapi, the endpoint and method default to the operation the reducer
picked from the document.`,
		Run: func(cmd *cobra.Command, args []string) {
			schema, op, err := resolveSchema(schemaText, schemaFile, openapiFile)
			if err != nil {
				color.Red("❌ %v", err)
				os.Exit(1)
			}

			if op != nil {
				if !cmd.Flags().Changed("endpoint") {
					endpoint = op.Path
				}
				if !cmd.Flags().Changed("method") && mockgen.IsValidMethod(op.Method) {
					method = op.Method
				}
			}

			if !mockgen.IsValidMethod(method) {
				color.Red("❌ Invalid method %q (expected GET, POST, PUT, or DELETE)", method)
				os.Exit(1)
			}

			gen := mockgen.NewGenerator()
			if seed != 0 {
				gen = mockgen.NewSeededGenerator(seed)
			}

			records := gen.Generate(schema, count)

			jsonPath, handlerPath, err := mockgen.WriteArtifacts(records, endpoint, method, outDir)
			if err != nil {
				color.Red("❌ %v", err)
				os.Exit(1)
			}

			color.Green("✅ Generated %d record(s)", len(records))
			fmt.Printf("   Data:    %s\n", jsonPath)
			fmt.Printf("   Handler: %s\n", handlerPath)
		},
	}

	cmd.Flags().StringVar(&schemaText, "schema", "", "Inline schema JSON, e.g. '{\"id\":\"uuid\"}'")
	cmd.Flags().StringVar(&schemaFile, "schema-file", "", "Path to a schema JSON file")
	cmd.Flags().StringVar(&openapiFile, "openapi", "", "Path to an OpenAPI document (.json, .yaml, .yml)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of records to generate (clamped to [1, 10000])")
	cmd.Flags().StringVarP(&method, "method", "m", "GET", "HTTP method for the handler (GET, POST, PUT, DELETE)")
	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "/", "Endpoint path for the handler")
	cmd.Flags().StringVarP(&outDir, "out", "o", "mocks", "Output directory for generated artifacts")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output (0 = random)")

	return cmd
}

func createConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <openapi-file>",
		Short: "Convert an OpenAPI document to a flat schema",
		Long: `Reduce an OpenAPI document to the flat field-to-tag schema that generate
accepts, and print it as JSON on stdout. Only the document's first path and
first method are examined. The output can be edited and fed back through
--schema-file.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			op, err := reduceFile(args[0])
			if err != nil {
				color.Red("❌ %v", err)
				os.Exit(1)
			}

			data, err := op.Schema.MarshalJSON()
			if err != nil {
				color.Red("❌ %v", err)
				os.Exit(1)
			}

			fmt.Fprintf(os.Stderr, "Reduced %s %s (%d field(s))\n", op.Method, op.Path, len(op.Schema))
			fmt.Println(string(data))
		},
	}
}

func createInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <openapi-file>",
		Short: "Show which operation the reducer would use",
		Long: `Load an OpenAPI document and report the path, method, and fields the
reducer picks, without generating anything.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			op, err := reduceFile(args[0])
			if err != nil {
				color.Red("❌ %v", err)
				os.Exit(1)
			}

			color.Green("✅ %s %s", op.Method, op.Path)
			for _, f := range op.Schema {
				fmt.Printf("   %-24s %s\n", f.Name, f.Tag)
			}
		},
	}
}

// resolveSchema picks the schema source: inline text, a schema file, or an
// OpenAPI document. Exactly one must be provided. The ReducedOperation is
// non-nil only for the OpenAPI case.
func resolveSchema(schemaText, schemaFile, openapiFile string) (mockgen.Schema, *mockgen.ReducedOperation, error) {
	provided := 0
	for _, s := range []string{schemaText, schemaFile, openapiFile} {
		if s != "" {
			provided++
		}
	}
	if provided != 1 {
		return nil, nil, fmt.Errorf("provide exactly one of --schema, --schema-file, or --openapi")
	}

	if openapiFile != "" {
		op, err := reduceFile(openapiFile)
		if err != nil {
			return nil, nil, err
		}
		return op.Schema, op, nil
	}

	text := schemaText
	if schemaFile != "" {
		data, err := os.ReadFile(schemaFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read schema file: %w", err)
		}
		text = string(data)
	}

	schema, err := mockgen.ParseSchema(text)
	if err != nil {
		return nil, nil, err
	}
	return schema, nil, nil
}

func reduceFile(path string) (*mockgen.ReducedOperation, error) {
	doc, err := mockgen.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return mockgen.Reduce(doc)
}
