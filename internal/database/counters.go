package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Numérotation des commandes : compteur dédié incrémenté atomiquement via
// FindOneAndUpdate, au lieu du read-then-write max+1 qui pouvait allouer des
// doublons sous concurrence. Le compteur est semé à 99999 pour que la première
// commande reçoive le numéro 100000 (plancher à 6 chiffres).
const (
	counterOrderNumber   = "order_number"
	orderNumberFloorSeed = 99999
)

// EnsureCounters sème les compteurs manquants. Idempotent : $setOnInsert ne
// touche jamais un compteur existant.
func EnsureCounters(ctx context.Context) error {
	coll := MongoOrdersDB.Collection("counters")

	_, err := coll.UpdateOne(ctx,
		bson.M{"_id": counterOrderNumber},
		bson.M{"$setOnInsert": bson.M{"seq": int64(orderNumberFloorSeed)}},
		options.Update().SetUpsert(true),
	)
	return err
}

// NextOrderNumber alloue le prochain numéro de commande. Dense, strictement
// croissant, jamais réutilisé. Pas d'upsert ici : un compteur absent doit
// échouer bruyamment plutôt que repartir à 1.
func NextOrderNumber(ctx context.Context) (int64, error) {
	coll := MongoOrdersDB.Collection("counters")

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": counterOrderNumber},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}
