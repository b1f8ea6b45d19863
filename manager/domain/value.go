package domain

import (
	"fmt"
	"time"

	"github.com/registra/api/pkg/util"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/x/bsonx/bsoncore"
)

// EncryptedPassword is hashed with argon2id when it is written to the store.
// Values that are already hashes are stored unchanged.
type EncryptedPassword string

func (value EncryptedPassword) MarshalBSONValue() (typ byte, data []byte, err error) {
	valStr := string(value)
	if util.IsArgon2Hash(valStr) {
		return byte(bson.TypeString), bsoncore.AppendString(nil, valStr), nil
	}
	pwdHash, err := util.CreateArgon2Hash(valStr)
	return byte(bson.TypeString), bsoncore.AppendString(nil, pwdHash), err
}

func (value *EncryptedPassword) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ != byte(bson.TypeString) {
		return fmt.Errorf("invalid type %v for EncryptedPassword", bson.Type(typ))
	}

	str, _, ok := bsoncore.ReadString(data)
	if !ok {
		return fmt.Errorf("failed to read bson string")
	}

	*value = EncryptedPassword(str)
	return nil
}

func (value EncryptedPassword) String() string {
	return "*******"
}

func (value EncryptedPassword) Cmp(plainText string) (bool, error) {
	return util.ComparePasswordAndHash(plainText, string(value))
}

type BaseEntity struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	CreatedTime int64         `bson:"createdTime,omitempty"`
	UpdatedTime int64         `bson:"updatedTime,omitempty"`
	CreatorID   bson.ObjectID `bson:"creatorID,omitempty"`
	UpdaterID   bson.ObjectID `bson:"updaterID,omitempty"`
}

func NewBaseEntity(creatorID, updaterID *bson.ObjectID) BaseEntity {
	now := time.Now().UnixMilli()
	entity := BaseEntity{
		CreatedTime: now,
		UpdatedTime: now,
	}
	if creatorID != nil {
		entity.CreatorID = *creatorID
	}
	if updaterID != nil {
		entity.UpdaterID = *updaterID
	}
	return entity
}
