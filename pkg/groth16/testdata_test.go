package groth16

// Pinned Circom/snarkjs-produced verifying keys and proofs used by the
// tests in groth16_test.go. These decimal constants are cryptographic test
// vectors, not authorial expression: they are carried over verbatim from
// the multiplier2 and three-public-input circuit fixtures this verifier
// was validated against.

// Circom multiplier2 circuit, public output 33.
const (
	piAX1 = "4619434547164325081923648243067958995814461722276790408259976269673531268875"
	piAY1 = "17285941344797724749074955491828477791926771489034344863858176130130219822865"

	piBX1  = "7493377171278660922342026159516494202893397635160892892797904546053101726860"
	piBX1b = "12257015281543965245685445974249405875916234863299766453693211602557670657219"
	piBY1  = "12131353492675488324271920506889811484612170039713745676687476036748951969131"
	piBY1b = "5187697901168563347516107227846365175711629678791848343161631452197878544126"

	piCX1 = "2224906812514985819002007785400739200833587017118171662746436788881490639334"
	piCY1 = "17575872684026867761893584228054463905548398624577391451682634656255301190545"

	vkAlpha1X1 = "10246350822467771900076635245792972119666566556250807950902733806864247380952"
	vkAlpha1Y1 = "608411288378915329930935766447369940767930506471659681097230521603283651905"

	vkBeta1X1  = "6131344741220743386799335429820992680362925873963442544072984714378368926041"
	vkBeta1X1b = "15789153394103558986310497145299360386833033851225792260568730098540011835894"
	vkBeta1Y1  = "20294744769931145130063498330622344384466672603336352492159120958989063471433"
	vkBeta1Y1b = "3758612818443493808972214480762460937559058096828360946639526592835030859803"

	vkGamma1X1  = "10857046999023057135944570762232829481370756359578518086990519993285655852781"
	vkGamma1X1b = "11559732032986387107991004021392285783925812861821192530917403151452391805634"
	vkGamma1Y1  = "8495653923123431417604973247489272438418190587263600148770280649306958101930"
	vkGamma1Y1b = "4082367875863433681332203403145435568316851327593401208105741076214120093531"

	vkDelta1X1  = "2331685158934782270621884102594249521613050557963549726699028399736205391535"
	vkDelta1X1b = "19932904864070474666569306255777842591060844877329635027414969502137306204189"
	vkDelta1Y1  = "18328176957461925860223052153948913273697229957014116201548221893444067392668"
	vkDelta1Y1b = "4892040004975702242175034718975862230235444061193165072087100231911981786509"

	ic0X1 = "21631942485326744232766849971585115612456593023934275850499378648736190910977"
	ic0Y1 = "10990468352600828980319524627816836646396500759270877213016615483259184677726"
	ic1X1 = "21229468961321243348662110358869948527418599923035918852855987234632719885365"
	ic1Y1 = "14718418867019175107712538434554605791301866350066611533272126162199859274702"
)

// Three-public-input circuit, inputs = [33, 3, 5].
const (
	piAX2 = "19392468517452974577942618696005895384800799906042106318697233463721693766857"
	piAY2 = "11733184222349063754296049194104702852248466442201114423019855124829727281495"

	piCX2 = "14537178142063348772247784963013529007912999377457777806993774035571456724739"
	piCY2 = "17288173778642609314695611486482435460623347370761147350405389833042911834390"

	piBX2  = "7870180900678843028456178167017451907138106017914540035097663772922052759069"
	piBX2b = "2676154602589869463817353172490741301223256773047921497031846934197445742235"
	piBY2  = "14244550656158180977726930281401023179485400919911817896878773580119256293941"
	piBY2b = "9995198113125036563130298991985119281424711885618696805083921479233677642060"

	vkAlpha1X2 = "1492340889437497096222099246540603464242089375646843408401381497321297191805"
	vkAlpha1Y2 = "11206096956007645304738557692578347108012874917451451037218479742065106409283"

	vkBeta1X2  = "6819705648602020464830649412138262446645951538756802487947753732543012497761"
	vkBeta1X2b = "11219895958388416928800243793178587081231733551464793980171225783205073571066"
	vkBeta1Y2  = "16232931317995312889893177026572807048495149241311423376955082994080106409796"
	vkBeta1Y2b = "221661055415397359078497694134150575803375790398012292192745950633940107116"

	// gamma is the same G2 generator as the multiplier2 circuit above.
	vkGamma1X2  = vkGamma1X1
	vkGamma1X2b = vkGamma1X1b
	vkGamma1Y2  = vkGamma1Y1
	vkGamma1Y2b = vkGamma1Y1b

	vkDelta1X2  = "5808924139029823792446683085355576723597107871161321088950475604373452728409"
	vkDelta1X2b = "794006949025015063691630962823267254566632109771507942299080649574885489297"
	vkDelta1Y2  = "8755580072416395880353332329707061182225307801858931969661521444593294405758"
	vkDelta1Y2b = "6753206114197090706093517144874887058584442501305676249216528764670697270591"

	ic0X2 = "10271593014494639556154917775587497160139512735158233514771987430693691505171"
	ic0Y2 = "820244293775287856216015804235186748836699371502118506034976181750078184820"
	ic1X2 = "2280705947019161452433451373159244292742431715288144611519626933019071363786"
	ic1Y2 = "14167304281910676563969694680310119449755461008189016344190787198178442130210"
	ic2X2 = "18065151204330767741864558320702649470751716898622025547025773925205377458663"
	ic2Y2 = "12530120613599435509444558723909129574908256194829780222525439733802640757968"
	ic3X2 = "2515573466743927184129285920552961694034693235978720556942741443996060153714"
	ic3Y2 = "10527719347406676325186974791933879637257851126926242922361792698025261451931"
)
