// Package assets provides the static parts of the PPTX package skeleton:
// themes, the slide master, the blank layout, the notes master and the
// presentation-level property parts.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - parts embedded at compile time
//	    ├── FilesystemLoader  - parts read from a directory on disk
//	    └── AssetResolver     - custom directory first, embedded fallback
//
// A custom directory only needs the parts it overrides. For example, a
// directory holding theme.xml restyles the slide master's theme while every
// other part comes from the embedded skeleton.
//
// # Directory Structure
//
//	{basePath}/
//	├── theme.xml
//	├── notesTheme.xml
//	├── slideMaster.xml
//	├── slideLayout.xml
//	├── notesMaster.xml
//	├── presProps.xml
//	├── viewProps.xml
//	└── tableStyles.xml
//
// Overridden parts must keep the relationship ids of the embedded ones: the
// slide master refers to its layout as rId1.
//
// # Security
//
// Part names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
