package i18n

// tables holds the per-language message catalogs. Keys absent from a
// language fall back to English in Translator.T.
//
// mailto.body takes two %s verbs: route name, then map link.
var tables = map[string]map[string]string{
	"en": {
		"query.intro": "Create an itinerary named",
		"query.from":  "starting from",
		"query.to":    "to",
		"query.mode":  "by",
		"query.via":   "via",

		"transport.CAR":        "Car",
		"transport.PEDESTRIAN": "Walking",
		"transport.TRANSIT":    "Public transit",

		"return.suffix": "Return",

		"mailto.subject": "My itinerary:",
		"mailto.body":    "Hello,\n\nHere is my itinerary \"%s\":\n%s\n\nSent from JyVais.",

		"system.instruction": "You are a route-planning assistant. Describe the requested itinerary step by step, adapting the directions to the requested transport mode. Answer in English.",

		"error.generation": "The itinerary could not be generated. Please try again.",

		"location.current": "My current location",
	},
	"fr": {
		"query.intro": "Crée un itinéraire nommé",
		"query.from":  "partant de",
		"query.to":    "vers",
		"query.mode":  "en",
		"query.via":   "en passant par",

		"transport.CAR":        "Voiture",
		"transport.PEDESTRIAN": "À pied",
		"transport.TRANSIT":    "Transports en commun",

		"return.suffix": "Retour",

		"mailto.subject": "Mon itinéraire :",
		"mailto.body":    "Bonjour,\n\nVoici mon itinéraire « %s » :\n%s\n\nEnvoyé depuis JyVais.",

		"system.instruction": "Tu es un assistant de planification d'itinéraires. Décris l'itinéraire demandé étape par étape, en adaptant les indications au mode de transport demandé. Réponds en français.",

		"error.generation": "L'itinéraire n'a pas pu être généré. Veuillez réessayer.",

		"location.current": "Ma position actuelle",
	},
	"de": {
		"query.intro": "Erstelle eine Route namens",
		"query.from":  "von",
		"query.to":    "nach",
		"query.mode":  "mit",
		"query.via":   "über",

		"transport.CAR":        "Auto",
		"transport.PEDESTRIAN": "Zu Fuß",
		"transport.TRANSIT":    "Öffentliche Verkehrsmittel",

		"return.suffix": "Rückweg",

		"mailto.subject": "Meine Route:",
		"mailto.body":    "Hallo,\n\nhier ist meine Route \"%s\":\n%s\n\nGesendet mit JyVais.",

		"system.instruction": "Du bist ein Assistent für Routenplanung. Beschreibe die gewünschte Route Schritt für Schritt und passe die Hinweise an das gewünschte Verkehrsmittel an. Antworte auf Deutsch.",

		"error.generation": "Die Route konnte nicht erstellt werden. Bitte versuche es erneut.",

		"location.current": "Mein aktueller Standort",
	},
	"it": {
		"query.intro": "Crea un itinerario chiamato",
		"query.from":  "partendo da",
		"query.to":    "verso",
		"query.mode":  "in",
		"query.via":   "passando per",

		"transport.CAR":        "Auto",
		"transport.PEDESTRIAN": "A piedi",
		"transport.TRANSIT":    "Mezzi pubblici",

		"return.suffix": "Ritorno",

		"mailto.subject": "Il mio itinerario:",
		"mailto.body":    "Ciao,\n\necco il mio itinerario \"%s\":\n%s\n\nInviato da JyVais.",

		"system.instruction": "Sei un assistente per la pianificazione di itinerari. Descrivi l'itinerario richiesto passo dopo passo, adattando le indicazioni al mezzo di trasporto richiesto. Rispondi in italiano.",

		"error.generation": "Non è stato possibile generare l'itinerario. Riprova.",

		"location.current": "La mia posizione attuale",
	},
	"nl": {
		"query.intro": "Maak een route met de naam",
		"query.from":  "vanaf",
		"query.to":    "naar",
		"query.mode":  "met",
		"query.via":   "via",

		"transport.CAR":        "Auto",
		"transport.PEDESTRIAN": "Te voet",
		"transport.TRANSIT":    "Openbaar vervoer",

		"return.suffix": "Terug",

		"mailto.subject": "Mijn route:",
		"mailto.body":    "Hallo,\n\nhier is mijn route \"%s\":\n%s\n\nVerstuurd met JyVais.",

		"system.instruction": "Je bent een assistent voor routeplanning. Beschrijf de gevraagde route stap voor stap en pas de aanwijzingen aan aan het gevraagde vervoermiddel. Antwoord in het Nederlands.",

		"error.generation": "De route kon niet worden gegenereerd. Probeer het opnieuw.",

		"location.current": "Mijn huidige locatie",
	},
}
