// Package guard provides ready-made route guards for the dispatch pipeline.
// A guard inspects the request context and returns an allow or deny
// decision; the dispatcher runs a route's guards in order and stops at the
// first denial, rendering its status and message through the standard error
// envelope. OPTIONS requests never reach guards.
//
// Guards never return errors. Anything that would be one is expressed as a
// denial with an appropriate status: infrastructure outages deny with 503,
// bad credentials with 401.
//
// # Usage
//
// Protect a route with a static API key (store only bcrypt hashes):
//
//	hash, _ := guard.HashAPIKey("s3cret")
//
//	router.Route[*router.Context]{
//		Method: "POST", Path: "/internal/rebuild",
//		Guards:  []handler.Guard[*router.Context]{guard.APIKey[*router.Context](hash)},
//		Handler: rebuildIndex,
//	}
//
// Require a signed JWT and read its subject in the handler:
//
//	router.Route[*router.Context]{
//		Method: "GET", Path: "/me",
//		Guards:  []handler.Guard[*router.Context]{guard.Bearer[*router.Context](cfg.JWTSecret)},
//		Handler: func(ctx *router.Context) handler.Response {
//			userID, _ := guard.GetSubject(ctx)
//			return response.JSON(map[string]string{"user_id": userID})
//		},
//	}
//
// Validate opaque service tokens against Redis so revocation takes effect
// across all instances:
//
//	store := guard.NewRedisStore(redisClient, "svc-token:")
//	guards := []handler.Guard[*router.Context]{guard.Token[*router.Context](store)}
package guard
