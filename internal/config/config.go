package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé, on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// VerifyPrices : active la re-vérification serveur du total du panier.
// Désactivé par défaut : le contrat de référence stocke les montants
// soumis par le client tels quels.
func VerifyPrices() bool {
	return os.Getenv("VERIFY_PRICES") == "true"
}

// Getenv avec valeur par défaut
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
