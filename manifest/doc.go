// Package manifest loads YAML declarations of client and server environment
// variables and compiles them into envgate schemas.
//
// A manifest names each variable under a server or client section, with an
// optional kind, constraint rule, default, and optional marker per variable:
//
//	prefix: NEXT_PUBLIC_
//	server:
//	  NODE_ENV:
//	    rule: "oneof=development test production"
//	  DATABASE_URL:
//	    kind: url
//	  WORKER_COUNT:
//	    kind: int
//	    default: "4"
//	client:
//	  NEXT_PUBLIC_APP_URL:
//	    kind: url
//
// Unknown top-level keys and unknown kinds are rejected at load time, before
// any environment validation runs.
package manifest
