// Package server is the HTTP boundary over the resource store.
//
// It maps REST requests onto the query and mutation operations of
// pkg/resource and forwards their results verbatim:
//
//	GET    /{resource}        list (filter/search/sort/page, X-Total-Count)
//	GET    /{resource}/{id}   one record
//	POST   /{resource}        create
//	PUT    /{resource}/{id}   replace
//	PATCH  /{resource}/{id}   merge
//	DELETE /{resource}/{id}   delete
//	GET    /                  collection index
//	GET    /db                the whole dataset
//	GET    /__health          liveness, readiness and collection names
//
// Every data request first passes the store's ready-gate, so nothing is
// served against a half-loaded snapshot. The health endpoint answers while
// loading is still in progress and reports readiness instead.
package server
