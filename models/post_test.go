package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestPostDocumentLeavesOutViewerFields(t *testing.T) {
	p := Post{
		ID:       "1",
		Title:    "Northern Lights in Iceland",
		AuthorID: "6",
		Author:   User{ID: "6", Username: "arctic_explorer"},
		IsLiked:  true,
	}
	raw, err := bson.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}

	if doc["_id"] != "1" || doc["author_id"] != "6" {
		t.Fatalf("doc = %v", doc)
	}
	for _, k := range []string{"author", "isliked", "IsLiked"} {
		if _, ok := doc[k]; ok {
			t.Fatalf("%s stored on the post document", k)
		}
	}
}
