// Package importer loads glossary definitions from XML or YAML files.
//
// An XML file looks like:
//
//	<glossary>
//	  <definition>
//	    <term>iterator</term>
//	    <seq_num>1</seq_num>
//	    <slug>iterator_1</slug>
//	    <description><![CDATA[<p>An object that walks a collection.</p>]]></description>
//	    <see_also>#collection</see_also>
//	    <see_also>-7</see_also>
//	  </definition>
//	</glossary>
//
// The YAML form carries the same fields under a top-level definitions list.
//
// Every definition needs exactly one term and one description; seq_num and
// slug are optional but may appear once. A description of the form "@name"
// is read from the file name, relative to the definitions file; ".md" files
// are converted to HTML. Term text is NFC-normalised.
//
// See-also entries that will not resolve are reported as warnings in the
// [Result] and the definition is imported anyway.
package importer
