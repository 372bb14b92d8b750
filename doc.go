// Package mailroutes provides a Go client for the Mailgun routes API.
//
// A route is a Mailgun rule that matches inbound mail with a filter
// expression and applies an ordered list of actions to it. The client lists
// routes one page at a time and creates, updates and deletes individual
// routes. In dry-run mode every mutating call is simulated: it reports success
// without contacting the server, while listing still reads live data.
//
// Basic usage:
//
//	client, err := mailroutes.New(os.Getenv("MAILGUN_API_KEY"), dryRun)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.CreateRoute(ctx, mailroutes.RouteDescriptor{
//	    Priority:    10,
//	    Description: "support inbox",
//	    Expression:  mailroutes.MatchRecipient("support@example.com"),
//	    Actions:     []string{mailroutes.Forward("team@example.com"), mailroutes.Stop()},
//	})
//
// # Pagination
//
// [Client.ListRoutes] returns exactly one page. Callers that need every route
// advance the offset themselves until they have TotalCount items:
//
//	var all []mailroutes.Route
//	for {
//	    page, err := client.ListRoutes(ctx, mailroutes.WithSkip(uint64(len(all))))
//	    if err != nil {
//	        return err
//	    }
//	    all = append(all, page.Items...)
//	    if len(page.Items) == 0 || uint64(len(all)) >= page.TotalCount {
//	        break
//	    }
//	}
//
// # Credentials
//
// The API key is sealed in memory as soon as [New] returns and is only
// opened while a request's Authorization header is set. It never appears in
// errors or log output.
//
// # Created route IDs
//
// [Client.CreateRoute] does not return the new route's ID. Callers that need
// it list routes again after creating.
package mailroutes
