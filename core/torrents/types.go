package torrents

// Torrent is a single availability record returned by the index.
type Torrent struct {
	URL       string `json:"url"`
	Hash      string `json:"hash"`
	Quality   string `json:"quality"`
	Type      string `json:"type"`
	Seeds     int    `json:"seeds"`
	Peers     int    `json:"peers"`
	Size      string `json:"size"`
	SizeBytes int64  `json:"size_bytes"`
}

// DefaultQualities is the quality allow-list applied when callers pass none.
var DefaultQualities = []string{"720p", "1080p", "2160p"}

// FilterByQuality returns the torrents whose quality label is in the
// allow-list, preserving order.
func FilterByQuality(list []Torrent, qualities []string) []Torrent {
	if len(list) == 0 {
		return nil
	}
	if len(qualities) == 0 {
		qualities = DefaultQualities
	}

	allowed := make(map[string]struct{}, len(qualities))
	for _, q := range qualities {
		allowed[q] = struct{}{}
	}

	var out []Torrent
	for _, t := range list {
		if _, ok := allowed[t.Quality]; ok {
			out = append(out, t)
		}
	}
	return out
}

// listMoviesResponse mirrors the YTS list_movies.json envelope.
type listMoviesResponse struct {
	Status        string `json:"status"`
	StatusMessage string `json:"status_message"`
	Data          struct {
		MovieCount int `json:"movie_count"`
		Movies     []struct {
			ID       int       `json:"id"`
			ImdbCode string    `json:"imdb_code"`
			Torrents []Torrent `json:"torrents"`
		} `json:"movies"`
	} `json:"data"`
}
