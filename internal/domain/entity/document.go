package entity

// Document es una entidad persistible en una colección del almacén documental.
// El almacén es el único que asigna el identificador.
type Document interface {
	DocumentID() string
	SetDocumentID(id string)
}
