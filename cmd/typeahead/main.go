// A simple spelling corrector implemented as a HTTP server.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aaw/fuzzytrie/levenshtein"
	"github.com/aaw/fuzzytrie/trie"
)

var usage = `
typeahead implements a simple spelling corrector served over HTTP.

Example: /search?q=helo returns spelling corrections for "helo".

Accepted query params are;
 q: The string query. Default is the empty string.
 n: The max number of results. Default is 10.
 d: The edit distance to search within. Default is 1/3 the length of the
    query.
 e: If zero, results are never augmented with prefix matches. Default
    (nonzero): augment with prefix matches when the edit-distance search
    returns fewer than n results.

Parameters:
`

var dictFile = flag.String("dictionary", "/usr/share/dict/words",
	"A file containing correctly spelled words, one per line.")

var port = flag.Int("port", 3000, "The port the server will listen on.")

var logger *log.Logger

// newSearchHandler loads the dictionary file at filename into a trie.Map and
// returns it wrapped in a searchHandler. The dictionary file should contain
// a list of words, one per line.
func newSearchHandler(filename string) searchHandler {
	t := trie.NewMap[string](true)
	logger.Printf("Loading %v, this may take a few seconds...\n", filename)
	start := time.Now()
	file, err := os.Open(filename)
	if err != nil {
		panic(fmt.Sprintf("%v: %v", filename, err))
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)
	count := 0
	for scanner.Scan() {
		word := strings.ToLower(scanner.Text())
		t.Set(word, word)
		count++
	}
	elapsed := time.Since(start)
	logger.Printf("Loaded %v words from %v in time %v.\n",
		count, filename, elapsed)
	return searchHandler{t: t}
}

type searchHandler struct {
	t *trie.Map[string]
}

// uniq returns up to n strings in the input slice, omitting duplicates.
func uniq(xs []string, n int) []string {
	seen := make(map[string]bool)
	j := 0
	for i, x := range xs {
		if !seen[x] {
			seen[x] = true
			xs[j] = xs[i]
			j++
			if j >= n {
				return xs[:j]
			}
		}
	}
	return xs[:j]
}

// config specifies parameters for a trie.Map search.
type config struct {
	query          string
	limit          int
	dist           int
	expandSuffixes bool
}

// parseQuery parses query params into a config for searching a trie.Map. See
// usage message defined at the top of this file for a list of accepted
// query params.
func parseQuery(params map[string][]string) *config {
	cfg := &config{}
	if qp, ok := params["q"]; ok && len(qp) > 0 {
		cfg.query = qp[0]
	}
	cfg.limit = 10
	if qp, ok := params["n"]; ok && len(qp) > 0 {
		if i, err := strconv.Atoi(qp[0]); err == nil {
			cfg.limit = i
		}
	}
	cfg.dist = 1
	dset := false
	if qp, ok := params["d"]; ok && len(qp) > 0 {
		if i, err := strconv.Atoi(qp[0]); err == nil {
			cfg.dist = i
			dset = true
		}
	}
	if !dset {
		cfg.dist = len(cfg.query) / 3
	}
	if cfg.dist > levenshtein.MaxBitparallelK {
		cfg.dist = levenshtein.MaxBitparallelK
	}
	cfg.expandSuffixes = true
	if qp, ok := params["e"]; ok && len(qp) > 0 {
		if i, err := strconv.Atoi(qp[0]); err == nil && i == 0 {
			cfg.expandSuffixes = false
		}
	}
	return cfg
}

func (s searchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cfg := parseQuery(r.URL.Query())
	results := []string{}
	if cfg.query != "" {
		start := time.Now()
		matches, err := s.t.Suggest(cfg.query, cfg.dist)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if cfg.expandSuffixes && len(matches) < cfg.limit {
			more, err := s.t.SearchPrefix(cfg.query, cfg.dist, levenshtein.Levenshtein)
			if err == nil {
				matches = append(matches, more...)
			}
		}
		elapsed := time.Since(start)
		for _, m := range matches {
			results = append(results, m.Key)
		}
		results = uniq(results, cfg.limit)
		logger.Printf("Query %+v returned %v results in time %v\n",
			cfg, len(results), elapsed)
	}
	j, _ := json.Marshal(results)
	fmt.Fprint(w, string(j))
}

var indexText = `
<html>
  <head>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/jquery/1.11.2/jquery.min.js"
            integrity="sha256-1OxYPHYEAB+HIz0f4AdsvZCfFaX4xrTD9d2BtGLXnTI="
            crossorigin="anonymous"></script>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/easy-autocomplete/1.3.5/jquery.easy-autocomplete.min.js"
            integrity="sha256-aS5HnZXPFUnMTBhNEiZ+fKMsekyUqwm30faj/Qh/gIA="
            crossorigin="anonymous"></script>
    <link rel="stylesheet"
          href="https://cdnjs.cloudflare.com/ajax/libs/easy-autocomplete/1.3.5/easy-autocomplete.min.css"
          integrity="sha256-fARYVJfhP7LIqNnfUtpnbujW34NsfC4OJbtc37rK2rs="
          crossorigin="anonymous" />
    <link rel="stylesheet"
          href="https://cdnjs.cloudflare.com/ajax/libs/easy-autocomplete/1.3.5/easy-autocomplete.themes.min.css"
          integrity="sha256-kK9BInVvQN0PQuuyW9VX2I2/K4jfEtWFf/dnyi2C0tQ="
          crossorigin="anonymous" />
  </head>
  <body>
    <form>
      <div id="remote">
        <input id="remote-suggest" />
      </div>
    </form>
    <script type="text/javascript">
      var options = {
        url: function(query) { return "../search?q=" + query; }
      };
      $("#remote-suggest").easyAutocomplete(options);
    </script>
  </body>
</html>
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	logger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, indexText)
	})
	http.Handle("/search", newSearchHandler(*dictFile))
	logger.Printf("Serving on http://0.0.0.0:%d\n", *port)
	http.ListenAndServe(fmt.Sprintf(":%d", *port), nil)
}
