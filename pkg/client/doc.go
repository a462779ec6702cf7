// Package client provides a Go SDK for driving the modeling bridge over
// HTTP without hand-writing requests.
//
// Create a client and call typed methods for each modeling operation:
//
//	c, err := client.New(client.Config{BaseURL: "http://localhost:5000"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create some geometry.
//	res, err := c.DrawBox(ctx, client.BoxOpts{Width: 4, Depth: 4, Height: 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	token := res.EntityData.Bodies[0].BodyToken
//
//	// Use the persistent token later.
//	c.MoveBodyByToken(ctx, token, 1, 0, 0)
//	c.DeleteBodyByToken(ctx, token)
//
// Transport failures are retried a fixed number of times; a response that
// arrives is never retried, whatever its status. Operation failures come
// back in [Result] with Success false and the bridge's error text, not as a
// Go error.
package client
