// Package archive writes JSON documents to Amazon S3 or any S3-compatible
// object store (MinIO, R2, Spaces).
//
// An Archive is bound to a single bucket and an optional key prefix:
//
//	arc, err := archive.New(ctx, archive.Config{
//		Bucket: "landkit-leads",
//		Region: "eu-central-1",
//		Prefix: "leads/",
//	})
//	if err != nil {
//		return err
//	}
//	key, err := arc.Put(ctx, "2026/10/16/"+id+".json", submission)
//
// Errors returned by the SDK are classified into the sentinel errors in
// errors.go so callers can branch with errors.Is.
//
// For tests pass WithS3Client with a mock implementing S3Client.
package archive
