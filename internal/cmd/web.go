// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtreilly/leitner-box/internal/config"
	"github.com/mtreilly/leitner-box/internal/trainer"
)

func newWebCmd(cfg *config.Config, sess *trainer.Session) *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web UI server",
		Long:  "Start a read-only web dashboard showing progress, buckets, and due cards.",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := fmt.Sprintf("%s:%d", bind, port)

			http.HandleFunc("/", handleIndex())
			http.HandleFunc("/api/cards", handleAPICards(sess))
			http.HandleFunc("/api/due", handleAPIDue(sess))
			http.HandleFunc("/api/progress", handleAPIProgress(sess))

			fmt.Printf("Starting leitner-box web server on http://%s\n", addr)
			fmt.Println("Press Ctrl+C to stop")

			return http.ListenAndServe(addr, nil)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to serve on")
	cmd.Flags().StringVarP(&bind, "bind", "b", "127.0.0.1", "Address to bind to")

	return cmd
}

var indexTemplate = `<!DOCTYPE html>
<html>
<head>
	<title>Leitner Box</title>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<style>
		* { box-sizing: border-box; margin: 0; padding: 0; }
		body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 900px; margin: 0 auto; padding: 20px; }
		h1 { margin-bottom: 20px; color: #2c3e50; }
		h2 { margin: 20px 0 10px; color: #2c3e50; font-size: 18px; }
		.stats { display: flex; gap: 20px; margin-bottom: 20px; flex-wrap: wrap; }
		.stat { background: #f8f9fa; padding: 10px 20px; border-radius: 4px; }
		.stat-value { font-size: 24px; font-weight: bold; color: #3498db; }
		.stat-label { font-size: 12px; color: #666; text-transform: uppercase; }
		.buckets { display: flex; gap: 10px; flex-wrap: wrap; margin-bottom: 20px; }
		.bucket { background: white; border: 1px solid #e0e0e0; border-radius: 8px; padding: 12px 16px; text-align: center; min-width: 90px; }
		.bucket.retired { background: #e8f5e9; }
		.bucket-count { font-size: 20px; font-weight: 600; }
		.bucket-label { font-size: 12px; color: #666; }
		.cards { display: grid; gap: 10px; }
		.card { background: white; border: 1px solid #e0e0e0; border-radius: 8px; padding: 14px 18px; }
		.card-front { font-weight: 600; }
		.card-meta { color: #666; font-size: 13px; }
		.loading { text-align: center; padding: 40px; color: #666; }
		.error { background: #fee; color: #c33; padding: 20px; border-radius: 4px; margin: 20px 0; }
	</style>
</head>
<body>
	<h1>&#x1F4E6; Leitner Box</h1>

	<div class="stats">
		<div class="stat">
			<div class="stat-value" id="stat-progress">-</div>
			<div class="stat-label">Progress</div>
		</div>
		<div class="stat">
			<div class="stat-value" id="stat-day">-</div>
			<div class="stat-label">Study day</div>
		</div>
		<div class="stat">
			<div class="stat-value" id="stat-due">-</div>
			<div class="stat-label">Due today</div>
		</div>
	</div>

	<h2>Buckets</h2>
	<div class="buckets" id="buckets"><div class="loading">Loading...</div></div>

	<h2>Due today</h2>
	<div class="cards" id="due"><div class="loading">Loading...</div></div>

	<script>
		function escapeHtml(text) {
			const div = document.createElement('div');
			div.textContent = text;
			return div.innerHTML;
		}

		async function load() {
			try {
				const prog = await (await fetch('/api/progress')).json();
				document.getElementById('stat-progress').textContent = prog.percent + '%';
				document.getElementById('stat-day').textContent = prog.day;

				const bc = document.getElementById('buckets');
				bc.innerHTML = prog.buckets.map(function(n, b) {
					var retired = b === prog.buckets.length - 1;
					var html = '<div class="bucket' + (retired ? ' retired' : '') + '">';
					html += '<div class="bucket-count">' + n + '</div>';
					html += '<div class="bucket-label">' + (retired ? 'retired' : 'bucket ' + b) + '</div>';
					html += '</div>';
					return html;
				}).join('');

				const due = await (await fetch('/api/due')).json();
				document.getElementById('stat-due').textContent = due.cards.length;
				const dc = document.getElementById('due');
				if (due.cards.length === 0) {
					dc.innerHTML = '<div class="loading">Nothing due. Nice.</div>';
					return;
				}
				dc.innerHTML = due.cards.map(function(c) {
					var html = '<div class="card">';
					html += '<div class="card-front">' + escapeHtml(c.front) + '</div>';
					html += '<div class="card-meta">bucket ' + c.bucket;
					if (c.tags && c.tags.length) html += ' &middot; ' + escapeHtml(c.tags.join(', '));
					html += '</div></div>';
					return html;
				}).join('');
			} catch (e) {
				document.getElementById('due').innerHTML = '<div class="error">Failed to load dashboard</div>';
			}
		}

		load();
	</script>
</body>
</html>
`

func handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(indexTemplate))
	}
}

func handleAPICards(sess *trainer.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := &trainer.CardListOptions{
			Tag:    r.URL.Query().Get("tag"),
			Search: r.URL.Query().Get("q"),
		}
		if b := r.URL.Query().Get("bucket"); b != "" {
			n, err := strconv.Atoi(b)
			if err != nil {
				http.Error(w, "invalid bucket", http.StatusBadRequest)
				return
			}
			opts.Bucket = &n
		}

		cards, err := sess.Store().ListCards(opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cards)
	}
}

func handleAPIDue(sess *trainer.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := -1
		if d := r.URL.Query().Get("day"); d != "" {
			n, err := strconv.Atoi(d)
			if err != nil {
				http.Error(w, "invalid day", http.StatusBadRequest)
				return
			}
			day = n
		}

		cards, day, err := sess.Due(day)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if cards == nil {
			cards = []*trainer.Card{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"day": day, "cards": cards})
	}
}

func handleAPIProgress(sess *trainer.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		percent, err := sess.Progress()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		counts, err := sess.BucketCounts()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		day, err := sess.CurrentDay()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"percent": percent,
			"buckets": counts,
			"day":     day,
		})
	}
}
