// Package ytdlp adapts yt-dlp (via github.com/lrstanley/go-ytdlp) as the
// audio fetcher for canonical reel URLs.
//
// Each fetch downloads best-audio into a fresh temporary directory under
// the staging dir and returns the resulting file path. CookieSource
// implements the credential resolution chain: per-request cookie file,
// configured cookie file, inline cookie text materialized once per process,
// then a browser profile for interactive runs.
package ytdlp
