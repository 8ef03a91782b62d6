// Package torrents looks up download availability for movies on the YTS
// index. Lookups are cached in memory with a short TTL so repeated checks
// for the same title do not hit the network.
package torrents
