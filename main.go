package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/miya9209-prog/ms-blog-maker-V1/generator"
	"github.com/miya9209-prog/ms-blog-maker-V1/product"
	"github.com/miya9209-prog/ms-blog-maker-V1/publisher"
	"github.com/miya9209-prog/ms-blog-maker-V1/server"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config/config.json", "path to config.json")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	topic := flag.String("topic", "", "post topic or product name")
	postType := flag.String("type", "item", "post type: item or general")
	platform := flag.String("platform", "naver", "target platform: naver, tistory, or blogger")
	productURL := flag.String("url", "", "product page URL")
	keywords := flag.String("keywords", "", "comma-separated keywords, highest priority first")
	notes := flag.String("notes", "", "extra notes or source material")
	sizes := flag.String("sizes", "", "size and measurement text for the size tables")
	reviews := flag.String("reviews", "", "customer review text")
	outDir := flag.String("out", ".", "output directory for generated files")
	flag.BoolVar(&verbose, "v", false, "enable info logs")
	flag.Parse()

	cfg, err := generator.LoadConfig(*configPath)
	if err != nil {
		log.Printf("[config] %v; continuing without config", err)
		cfg = generator.Config{}
	}

	agent, err := generator.NewAgent(buildLLM(cfg))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fetcher := product.NewFetcher(time.Duration(cfg.FetchTimeoutSec) * time.Second)

	// Web server mode
	if *serve {
		srv, err := server.New(agent, fetcher)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// One-shot CLI mode: generate once and write the txt/html/md files.
	req := generator.Request{
		Platform:   platformLabel(*platform),
		PostType:   postTypeLabel(*postType),
		Topic:      *topic,
		ProductURL: *productURL,
		Keywords:   *keywords,
		Notes:      *notes,
		SizeSpec:   *sizes,
		Reviews:    *reviews,
	}

	ctx := context.Background()

	if strings.TrimSpace(req.Topic) == "" && req.ProductURL != "" {
		info := fetcher.Fetch(ctx, req.ProductURL)
		req.Topic = info.Name
		infof("fetched product name %q from %s", info.Name, req.ProductURL)
	}
	if strings.TrimSpace(req.Topic) == "" {
		fmt.Fprintln(os.Stderr, "--topic is required (or --url pointing at a readable product page)")
		os.Exit(1)
	}

	log.Printf("[cli] generating topic=%q platform=%q type=%q", req.Topic, req.Platform, req.PostType)
	post, err := agent.Generate(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	infof("generated %d hashtags, title %q", len(post.Hashtags), post.Title)

	downloads := []publisher.Download{
		publisher.TextDownload(post.GeneratedAt, post.Title, post.Text),
		publisher.HTMLDownload(post.GeneratedAt, post.Title, post.Body),
		publisher.MarkdownDownload(post.GeneratedAt, post.Title, post.Text),
	}
	for _, d := range downloads {
		path := filepath.Join(*outDir, d.Name)
		if err := os.WriteFile(path, d.Content, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(path)
	}
	log.Printf("[cli] done title=%q", post.Title)
}

func infof(format string, args ...any) {
	if !verbose {
		return
	}
	log.Printf("[INFO] "+format, args...)
}

// platformLabel maps the short CLI value onto the full platform label the
// prompt templates expect.
func platformLabel(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tistory":
		return generator.PlatformTistory
	case "blogger":
		return generator.PlatformBlogger
	default:
		return generator.PlatformNaver
	}
}

func postTypeLabel(name string) string {
	if strings.ToLower(strings.TrimSpace(name)) == "general" {
		return generator.PostTypeGeneral
	}
	return generator.PostTypeItem
}

// buildLLM never fails: anything wrong with the llm block drops the app into
// offline test mode so the rest of the pipeline stays usable without a key.
func buildLLM(cfg generator.Config) generator.LLMClient {
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		log.Printf("[llm] no llm config; running in offline test mode")
		return generator.OfflineLLM{}
	}
	if !usableKey(cfg.LLM.APIKey) {
		log.Printf("[llm] api key missing or malformed; running in offline test mode")
		return generator.OfflineLLM{}
	}
	switch cfg.LLM.Provider {
	case "openai":
		llm, err := generator.NewOpenAILLMFromConfig(cfg.LLM.Settings())
		if err != nil {
			log.Printf("[llm] %v; running in offline test mode", err)
			return generator.OfflineLLM{}
		}
		return llm
	case "anthropic":
		llm, err := generator.NewAnthropicLLMFromConfig(cfg.LLM.Settings())
		if err != nil {
			log.Printf("[llm] %v; running in offline test mode", err)
			return generator.OfflineLLM{}
		}
		return llm
	default:
		log.Printf("[llm] provider %s not supported; running in offline test mode", cfg.LLM.Provider)
		return generator.OfflineLLM{}
	}
}

// usableKey rejects keys that are empty or carry non-printable or non-ASCII
// bytes, which happens when placeholder text gets pasted into config.json.
func usableKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return true
}
