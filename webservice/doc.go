// Package webservice loads typed HTTP resources.
//
// A Resource describes one HTTP operation (URL, method, optional body) and
// how to decode its response into a Go type. A Webservice executes the
// operation on its own goroutine and delivers exactly one Result to a
// completion callback.
//
// # Basic Usage
//
//	ws, err := webservice.New(webservice.Config{Timeout: 10 * time.Second})
//
//	todos := webservice.NewResource[[]Todo]("https://api.example.com/todos")
//	webservice.Load(ws, todos, func(r webservice.Result[[]Todo]) {
//	    list, err := r.Get()
//	    ...
//	})
//
// # Posting a Body
//
//	created := webservice.NewResourceWithMethod[Created](
//	    "https://api.example.com/posts",
//	    webservice.Post([]byte(`{"title":"bar"}`)),
//	)
//	res := webservice.LoadFuture(ctx, ws, created).Result()
//
// # Outcome Classification
//
// Transport failures are BadInput, a 401 response is NotAuthenticated, and
// an empty or undecodable body is Other. Completion is always asynchronous
// and always fires exactly once.
package webservice
