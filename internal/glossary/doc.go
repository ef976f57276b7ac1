// Package glossary builds the alphabetical glossary from stored terms.
//
// The package has three parts:
//
//   - [Term] and [SeeAlso] mirror the stored rows.
//   - [NewEntry] turns one term and its see-also rows into an [Entry] that is
//     ready to render: display text, the paired term/definition anchors and
//     the resolved references.
//   - [Service] walks the alphabet, asks a [Repository] for the terms of each
//     letter and emits a flat list of [Fragment] values. Section boundaries are
//     tracked by an explicit [SectionState] so sections are always balanced.
//
// Usage:
//
//	svc := glossary.NewService(repo, reference.Constants{
//	    ChapterBaseURL: "https://example.edu/jones/",
//	}, glossary.WithLogger(log))
//
//	fragments, err := svc.Fragments(ctx)
//	if err != nil {
//	    return err
//	}
//
// The service holds no state between calls and is safe for concurrent use as
// long as the repository is.
package glossary
