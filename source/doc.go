// Package source loads input documents for splitting.
//
// A Source opens documents by name. Local files are memory mapped, remote
// objects (S3, MinIO) are downloaded into memory. A Loader opens many
// documents concurrently under the limits of a resource controller and
// exposes them as a string vector, one element per document:
//
//	router := source.NewRouter()
//	router.Register(source.SchemeFile, source.NewLocal(""))
//	router.Register(source.SchemeS3, s3.New(client))
//
//	batch, err := source.NewLoader(source.WithController(rc)).Load(ctx, router, uris)
//	if err != nil { ... }
//	defer batch.Close()
//
//	str, err := batch.Strings()
//
// Strings of a batch share the document memory and are valid until Close.
package source
