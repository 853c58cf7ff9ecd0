// File: internal/responder/tables.go
package responder

import "github.com/tpolitam-arch/Drone-AI-Studio/internal/domain"

// table is one language's responses: a topic lookup plus the default
// text returned when no topic applies or the topic has no entry.
type table struct {
	topics   map[domain.Topic]string
	fallback string
}

// responses enumerates every (language, topic) combination statically.
// English carries the full topic set; other languages carry whatever
// translations exist and fall back to their own default text.
var responses = map[domain.LanguageCode]table{
	domain.LangEnglish: {
		topics: map[domain.Topic]string{
			domain.TopicAssembly:    "To assemble a drone for the first time, follow these steps:\n\n1. **Prepare your workspace**: Choose a clean, well-lit area with sufficient space.\n\n2. **Gather tools**: You'll need screwdrivers, hex keys, and cable ties.\n\n3. **Frame assembly**: Start with the main frame and attach the arms securely.\n\n4. **Motor installation**: Mount motors to each arm, ensuring proper orientation.\n\n5. **ESC connection**: Connect Electronic Speed Controllers to motors and flight controller.\n\n6. **Flight controller**: Mount centrally and connect to receiver, GPS, and other components.\n\n7. **Propeller installation**: Attach propellers last, ensuring correct rotation direction.\n\n8. **Testing**: Perform pre-flight checks before maiden flight.",
			domain.TopicComponents:  "Essential drone components include:\n\n**Flight Controller**: The brain of your drone, processes sensor data and controls flight.\n\n**Motors**: Brushless motors provide thrust. Choose based on payload and frame size.\n\n**ESCs**: Electronic Speed Controllers regulate motor speed based on flight controller signals.\n\n**Propellers**: Generate thrust. Size and pitch affect performance and efficiency.\n\n**Battery**: LiPo batteries provide power. Consider capacity, voltage, and discharge rate.\n\n**Frame**: Provides structure. Materials include carbon fiber, aluminum, and plastic.\n\n**Sensors**: Gyroscope, accelerometer, magnetometer, and GPS for stable flight.\n\n**Camera/Gimbal**: For aerial photography and videography applications.",
			domain.TopicMaintenance: "Proper drone maintenance ensures longevity and safe operation:\n\n**Pre-flight checks**: Inspect propellers, battery connections, and frame integrity.\n\n**Battery care**: Store at proper voltage levels, avoid over-discharge, check for swelling.\n\n**Motor maintenance**: Clean debris, check for smooth rotation, replace worn bearings.\n\n**Calibration**: Regularly calibrate compass, accelerometer, and gimbal.\n\n**Firmware updates**: Keep flight controller firmware current for bug fixes and features.\n\n**Storage**: Store in dry environment, remove batteries for long-term storage.",
			domain.TopicSimulation:  "Simscape provides powerful tools for drone simulation:\n\n**Multibody modeling**: Create accurate physical representations of drone components.\n\n**Control system design**: Test flight controllers before hardware implementation.\n\n**Environmental factors**: Simulate wind, turbulence, and payload variations.\n\n**Sensor modeling**: Include realistic sensor noise and delays.\n\n**Mission planning**: Test autonomous flight paths and obstacle avoidance.\n\n**Performance optimization**: Analyze efficiency and stability characteristics.",
			domain.TopicRules:       "DGCA (Directorate General of Civil Aviation) drone regulations in India:\n\n**Registration**: All drones must be registered on the Digital Sky platform.\n\n**Pilot license**: RPAS (Remotely Piloted Aircraft Systems) pilot license required for commercial operations.\n\n**No-fly zones**: Restricted around airports, military installations, and international borders.\n\n**Altitude limits**: Maximum 400 feet AGL (Above Ground Level) for civilian operations.\n\n**Visual line of sight**: Pilot must maintain visual contact with drone.\n\n**Insurance**: Third-party insurance mandatory for commercial operations.\n\n**Import regulations**: Type certificate required for drone imports.",
			domain.TopicUseCases:    "Drone applications in agriculture and other sectors:\n\n**Precision Agriculture**: Crop monitoring, pest detection, and yield estimation using multispectral imaging.\n\n**Spraying Operations**: Targeted pesticide and fertilizer application with GPS guidance.\n\n**Livestock Monitoring**: Track animal health and movement patterns.\n\n**Delivery Services**: Last-mile delivery for medical supplies and e-commerce.\n\n**Surveillance**: Security monitoring, border patrol, and disaster response.\n\n**Infrastructure Inspection**: Power lines, pipelines, and building assessments.\n\n**Mapping and Surveying**: High-resolution aerial mapping and 3D modeling.",
		},
		fallback: "I'm your Drone AI Assistant! I can help you with drone assembly, components, maintenance, DGCA regulations in India, simulations, and various use cases like agriculture and delivery. What would you like to know?",
	},
	domain.LangHindi: {
		topics: map[domain.Topic]string{
			domain.TopicAssembly: "पहली बार ड्रोन असेंबली के लिए इन चरणों का पालन करें:\n\n1. **कार्यस्थल तैयार करें**: एक साफ, अच्छी रोशनी वाला क्षेत्र चुनें।\n\n2. **उपकरण इकट्ठे करें**: स्क्रूड्राइवर, हेक्स की, और केबल टाई की आवश्यकता होगी।\n\n3. **फ्रेम असेंबली**: मुख्य फ्रेम से शुरू करें और आर्म्स को सुरक्षित रूप से जोड़ें।\n\n4. **मोटर इंस्टॉलेशन**: प्रत्येक आर्म पर मोटर माउंट करें।\n\n5. **ESC कनेक्शन**: इलेक्ट्रॉनिक स्पीड कंट्रोलर्स को मोटर्स और फ्लाइट कंट्रोलर से जोड़ें।\n\nक्या आपको किसी विशिष्ट चरण के बारे में और जानकारी चाहिए?",
		},
		fallback: "मैं आपका ड्रोन AI असिस्टेंट हूं! मैं ड्रोन असेंबली, घटकों, रखरखाव, भारत में DGCA नियमों आदि में आपकी मदद कर सकता हूं।",
	},
	domain.LangTelugu: {
		fallback: "నేను మీ డ్రోన్ AI అసిస్టెంట్! డ్రోన్ అసెంబ్లీ, భాగాలు, నిర్వహణ, భారతదేశంలో DGCA నిబంధనలు మొదలైన వాటిలో నేను మీకు సహాయం చేయగలను।",
	},
	domain.LangTamil: {
		fallback: "நான் உங்கள் ட்ரோன் AI உதவியாளர்! ட்ரோன் அசெம்ப்ளி, கூறுகள், பராமரிப்பு, இந்தியாவில் DGCA விதிமுறைகள் போன்றவற்றில் உங்களுக்கு உதவ முடியும்.",
	},
	domain.LangKannada: {
		fallback: "ನಾನು ನಿಮ್ಮ ಡ್ರೋನ್ AI ಸಹಾಯಕ! ಡ್ರೋನ್ ಅಸೆಂಬ್ಲಿ, ಘಟಕಗಳು, ನಿರ್ವಹಣೆ, ಭಾರತದಲ್ಲಿ DGCA ನಿಯಮಗಳು ಇತ್ಯಾದಿಗಳಲ್ಲಿ ನಾನು ನಿಮಗೆ ಸಹಾಯ ಮಾಡಬಲ್ಲೆ.",
	},
	domain.LangMalayalam: {
		fallback: "ഞാൻ നിങ്ങളുടെ ഡ്രോൺ AI അസിസ്റ്റന്റ് ആണ്! ഡ്രോൺ അസംബ്ലി, ഘടകങ്ങൾ, പരിപാലനം, ഇന്ത്യയിലെ DGCA നിയമങ്ങൾ തുടങ്ങിയവയിൽ എനിക്ക് നിങ്ങളെ സഹായിക്കാൻ കഴിയും.",
	},
	domain.LangBengali: {
		fallback: "আমি আপনার ড্রোন AI সহায়ক! ড্রোন অ্যাসেম্বলি, উপাদান, রক্ষণাবেক্ষণ, ভারতে DGCA নিয়মাবলী ইত্যাদিতে আমি আপনাকে সাহায্য করতে পারি।",
	},
	domain.LangMarathi: {
		fallback: "मी तुमचा ड्रोन AI सहाय्यक आहे! ड्रोन असेंब्ली, घटक, देखभाल, भारतातील DGCA नियम इत्यादींमध्ये मी तुम्हाला मदत करू शकतो।",
	},
}
