// Package textfmt formats typed values into text in a chosen character
// encoding, with alignment, fill and precision, without ever holding more
// than a bounded window of output in memory.
//
// The central entry points are [Print], [Sprint], [Bytes], [Fprint] and
// [PrintTo]. They accept a [Facets] list of options and variadic arguments of
// any type:
//
//	s := textfmt.Sprint(textfmt.Facets{}, "total: ", textfmt.Int(42).Right(6))
//
// # Arguments
//
// Strings, byte slices, integers and booleans are adapted automatically; see
// [Adapt]. Use the adapters to attach a format:
//
//   - [Str] and [Text] → text, with [Value.Precision] to truncate
//   - [Int], [Uint], [Bool] → decimal numbers and booleans
//   - [Char] → a single character, with [Value.Repeat]
//   - [Join] and [Range] → groups aligned as one unit
//
// Alignment is set with Left, Right, Center or Width and padded with the
// character given to Fill. Center puts the odd column of fill on the right.
//
// # Two phases
//
// Every argument is first turned into a [Printer]. While it is built it
// reports its size in bytes and its display width to a [Preview]; nothing is
// written yet. The printers are then written in order. [Measure] stops after
// the first phase and [Bytes] uses it to allocate the result once.
//
// # Output buffers
//
// Printers write into an [Outbuf], a cursor over a finite window. When the
// window is full its owner, a [Recycler], flushes it and installs a new one,
// or gives up and discards everything that follows. The package provides
// sinks for the common destinations:
//
//   - [CStrWriter] — a caller array, NUL terminated, truncating
//   - [ArrayWriter] — a caller array, truncating
//   - [BytesWriter] — a growing byte slice
//   - [StreamWriter] — an [io.Writer], flushed window by window
//   - [DiscardWriter] — nowhere
//
// Writes never return errors. Check [Outbuf.Good] once afterwards, or use
// the sink's Finish method.
//
// # Charsets
//
// [Charset] describes an encoding: ASCII, ISO-8859-1, ISO-8859-3,
// ISO-8859-15, windows-1252, UTF-8, UTF-16 and UTF-32. Use [ParseEncoding]
// to look one up by name. [FindTranscoder] converts between any two of them;
// invalid input is replaced by U+FFFD or '?' and reported to the
// [Notifier], never returned as an error. [NewTransformer] exposes the same
// conversions as a [golang.org/x/text/transform.Transformer].
//
// # Width
//
// A [WidthCalculator] measures text for alignment and precision:
// [FastWidth] counts code units, [FastCodepointWidth] and [CodepointWidth]
// count codepoints, and [WidthByFunc] sums a per-codepoint function such as
// [RuneWidth] or [EastAsianWidth].
//
// # Configuration
//
// Options are [Facet] values packed into [Facets]; later facets override
// earlier ones and [Constrain] limits facets to some argument kinds:
//
//	fp := textfmt.Pack(
//		textfmt.OutputCharset(textfmt.UTF16),
//		textfmt.Constrain(textfmt.ForTags(textfmt.TagInt), textfmt.FillChar('0')),
//	)
//
// [LoadConfigFile] reads the same options from YAML or TOML.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedEncoding] — unknown charset name
//   - [ErrInvalidConfig] — a config value cannot be used
//   - [ErrUnsupportedConfigFormat] — unknown config file format
package textfmt
