// Package schema describes the fields of an index: their names, value
// types, and whether values are stored, indexed or kept in a fast column.
//
// A schema is built once:
//
//	sch := schema.NewSchema()
//	title, _ := sch.AddTextField("title", schema.TEXT.Or(schema.STORED))
//	stars, _ := sch.AddU32Field("num_stars", schema.NewU32Options().SetStored().SetIndexed())
//
// and then shared read-only by the indexer, the query compiler and document
// retrieval. Terms built from the same field and value are byte-identical
// whichever of those built them.
package schema
