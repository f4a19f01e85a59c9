// Package match implements the lexical side of hybrid search: keyword and
// fuzzy scoring of queries against employee profiles, name-shaped query
// detection with name/email ranking, and the routing policy that decides
// which matching mode applies to an incoming query.
package match
