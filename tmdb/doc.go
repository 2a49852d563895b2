// Package tmdb provides a read-only client for The Movie Database (TMDB) v3 API.
//
// The client covers the five calls a movie browsing front end needs:
// popular, now playing and top rated lists, movie details, and free-text
// search. Each call issues exactly one request. Nothing is retried, cached
// or substituted; every failure reaches the caller.
//
// # Usage
//
//	client, err := tmdb.NewClient(tmdb.Config{
//		APIKey:   os.Getenv("TMDB_API_KEY"),
//		Language: "tr-TR",
//	}, logger, tmdb.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := client.FetchPopular(ctx, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, m := range page.Results {
//		fmt.Println(m.Title, m.Year(), m.Rating(), client.PosterURL(m.PosterPath, tmdb.SizeW500))
//	}
//
// # Error Handling
//
// Failures are typed so callers branch on kind, not message text:
//
//   - ValidationError: bad input, detected before any request (blank query, page < 1)
//   - TransportError: no response arrived (DNS, reset, timeout, cancellation)
//   - UpstreamError: the API answered with a non-2xx status
//   - DecodeError: a 2xx body that is not the expected JSON
//
//	var upstream *tmdb.UpstreamError
//	if errors.As(err, &upstream) && upstream.IsServerError() {
//		// try later
//	}
//	if errors.Is(err, tmdb.ErrNotFound) {
//		// 404
//	}
//
// # Formatting
//
// ImageURL, FormatRating, FormatRuntime, ExtractYear and FormatMoney are
// pure and never fail; malformed input degrades to a placeholder or the
// Unknown token.
package tmdb
