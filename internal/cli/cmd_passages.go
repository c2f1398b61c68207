package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/andyrewlee/gridpad/internal/config"
	"github.com/andyrewlee/gridpad/internal/embed"
	"github.com/andyrewlee/gridpad/internal/logging"
	"github.com/andyrewlee/gridpad/internal/passages"
	"github.com/andyrewlee/gridpad/internal/rank"
	"github.com/andyrewlee/gridpad/internal/selection"
)

// List column limits, in runes.
const (
	maxPassageWidth = 50
	maxVectorWidth  = 60
)

// embedOptions are the flags shared by the passage, query and embed commands.
// Empty values fall back to the config.
type embedOptions struct {
	dbPath  string
	url     string
	model   string
	timeout time.Duration
}

func (o *embedOptions) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.dbPath, "db", "", "Passage database (default ~/.gridpad/passages.db)")
	flags.StringVar(&o.url, "embed-url", "", "Embeddings endpoint")
	flags.StringVar(&o.model, "model", "", "Embedding model")
	flags.DurationVar(&o.timeout, "embed-timeout", 0, "Per-request timeout")
}

func (o *embedOptions) resolve(cfg *config.Config) {
	if o.dbPath == "" {
		o.dbPath = cfg.Paths.PassagesDB
	}
	if o.url == "" {
		o.url = cfg.Passages.EmbedURL
	}
	if o.model == "" {
		o.model = cfg.Passages.Model
	}
	if o.timeout <= 0 {
		o.timeout = cfg.Passages.Timeout
	}
}

func (o *embedOptions) client() *embed.Client {
	return embed.NewClient(o.url, o.timeout)
}

func (o *embedOptions) open(cmd *cobra.Command) (*passages.Store, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	o.resolve(cfg)
	store, err := passages.Open(o.dbPath)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

func buildPassagesCommand() *cobra.Command {
	var opts embedOptions
	cmd := &cobra.Command{
		Use:   "passages",
		Short: "Store text passages and their embeddings",
	}
	opts.addFlags(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "add [text...]",
		Short: "Store a passage and embed it; reads stdin when no text is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" || text == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimSpace(string(data))
			}
			if text == "" {
				return errors.New("passage text is empty")
			}

			store, _, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.Add(cmd.Context(), opts.client(), text, opts.model)
			if err != nil {
				return err
			}
			logging.Info("Stored passage %d", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Added passage %d\n", id)
			return nil
		},
	})

	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List stored passages with their embeddings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if asJSON {
				all, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if all == nil {
					all = []passages.Passage{}
				}
				return writeJSON(cmd.OutOrStdout(), all)
			}
			entries, err := store.Entries(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderEntries(entries))
			return nil
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "Print passages as JSON")
	cmd.AddCommand(list)
	return cmd
}

func buildQueryCommand() *cobra.Command {
	var (
		opts   embedOptions
		top    int
		method string
	)
	cmd := &cobra.Command{
		Use:   "query <query>...",
		Short: "Rank stored passages against one or more queries",
		Long: `Embed each query and print the closest stored passages as JSON.

Methods: cosine and dot rank the highest score first; euclidean and manhattan
rank the smallest distance first. Passages missing an embedding for the model
are embedded and saved on the way.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if top <= 0 {
				top = cfg.Passages.Top
			}
			if method == "" {
				method = cfg.Passages.Method
			}
			m, err := rank.ParseMethod(method)
			if err != nil {
				return err
			}

			results, err := store.Query(cmd.Context(), opts.client(), args, opts.model, top, m)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().IntVar(&top, "top", 0, "Matches per query (default from config)")
	cmd.Flags().StringVar(&method, "method", "", "cosine, euclidean, manhattan or dot (default from config)")
	return cmd
}

type embedding struct {
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
	Model     string    `json:"model"`
}

func buildEmbedCommand() *cobra.Command {
	var opts embedOptions
	cmd := &cobra.Command{
		Use:   "embed <text>...",
		Short: "Print the embedding of each argument as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			opts.resolve(cfg)

			vecs, err := opts.client().EmbedAll(cmd.Context(), args, opts.model)
			if err != nil {
				return err
			}
			out := make([]embedding, len(args))
			for i, text := range args {
				out[i] = embedding{Text: text, Embedding: vecs[i], Model: opts.model}
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	data, err := selection.Encode(v, "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderEntries(entries []passages.Entry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Passage", "Model", "Embedding")
	for _, e := range entries {
		model, vec := "None", "None"
		if e.Vector != nil {
			model, vec = e.Model, truncate(formatVector(e.Vector), maxVectorWidth)
		}
		t.Row(strconv.FormatInt(e.ID, 10), truncate(e.Text, maxPassageWidth), model, vec)
	}
	return t.Render()
}

func formatVector(vec []float64) string {
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = strconv.FormatFloat(v, 'f', 3, 64)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// truncate cuts s to width runes, ending in "..." when shortened.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
