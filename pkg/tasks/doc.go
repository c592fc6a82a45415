// Package tasks exposes the project document endpoints of the API.
//
// A Document wraps the name of a project file held by the remote storage
// service. Read operations return a cloud.Result holding the endpoint's
// payload when the server answered with code 200, and the code and status it
// answered with otherwise. Write operations mutate the stored document; on
// success the current document is fetched and saved through a FileSaver and
// the saved location is returned, otherwise the server's message is.
//
// Example:
//
//	client, err := cloud.NewClient(cfg)
//	...
//	saver := storage.NewMaterializer(storage.NewFolder(client), storage.NewLocalSink(nil, "out", logger), logger)
//	doc := tasks.NewDocument(client, saver, "plan.mpp", logger)
//
//	res, err := doc.GetTask(ctx, 3)
//	if err != nil {
//		return err
//	}
//	if !res.OK() {
//		// not found or failed; res.Code says which code came back
//	}
//
//	out, err := doc.AddTask(ctx, "Review", 5, "plan-v2.mpp")
//	// on success out.Path is "out/plan-v2.mpp" and doc.Name() is "plan-v2.mpp"
package tasks
