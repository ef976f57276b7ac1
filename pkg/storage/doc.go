// Package storage uploads published glossary pages to S3-compatible object
// storage (AWS S3, MinIO, R2) with aws-sdk-go-v2.
//
//	store, err := storage.New(storage.Config{
//		Bucket:     cfg.Storage.Bucket,
//		AccessKey:  cfg.Storage.AccessKey,
//		SecretKey:  cfg.Storage.SecretKey,
//		Endpoint:   cfg.Storage.Endpoint,
//		PathStyle:  cfg.Storage.PathStyle,
//		PublicURL:  cfg.Storage.PublicURL,
//		DefaultACL: storage.ACLPublicRead,
//	})
//
//	info, err := store.Put(ctx, bytes.NewReader(page), int64(len(page)),
//		storage.WithKey("glossary/index.html"),
//		storage.WithContentType("text/html; charset=utf-8"),
//	)
//	url, err := store.URL(ctx, info.Key)
//
// Keys are sanitized segment by segment: traversal is removed and unsafe
// characters become underscores. Without WithContentType, Put sniffs the
// body with http.DetectContentType.
//
// URL returns the public address built from PublicURL, the endpoint or the
// AWS default host; WithSigned returns a presigned GET URL instead.
//
// S3 failures are mapped onto [ErrNotFound], [ErrAccessDenied],
// [ErrUploadFailed], [ErrDeleteFailed] and [ErrPresignFailed].
package storage
