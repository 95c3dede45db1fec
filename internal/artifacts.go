package internal

// Hand-written artifacts served in mock mode. Headings and page grammar follow the
// instruction templates in prompts.go so the front end renders both the same way.

const ironManStory = `# 🎬 What If Iron Man Died in the First Avengers Movie?

🔥 **The Moment Everything Changed**
The nuclear missile soared through the Chitauri portal, and Tony Stark's arc reactor flickered one final time. In that split second, the entire Marvel universe shifted on its axis. The genius, billionaire, playboy, philanthropist became the ultimate sacrifice.

💥 **The Ripple Effect**
Pepper Potts transformed Stark Industries into a memorial empire, while the Avengers crumbled without their technological backbone. Captain America became a broken leader, and the world lost its greatest defender. Ultron never existed, but neither did Vision - leaving Earth defenseless against the coming storm.

⚡ **The New Reality**
Thanos would have won the Infinity War easily. Without Iron Man's technology, the Avengers had no chance. But perhaps Peter Parker would have found a different mentor, or the world would have learned to rely on human courage rather than technological genius.

🌟 **The Lesson**
Sometimes the greatest heroes are those who teach us that sacrifice is the ultimate form of heroism.`

const harryPotterStory = `# 🎬 What If Harry Potter Was Sorted Into Slytherin?

🔥 **The Moment Everything Changed**
The Sorting Hat's voice echoed through the Great Hall: "SLYTHERIN!" Gasps filled the air as Harry Potter, the Boy Who Lived, walked toward the emerald and silver table. In that instant, the entire wizarding world's expectations shattered.

💥 **The Ripple Effect**
Draco Malfoy became Harry's unexpected ally, while Ron and Hermione's friendship took a different path. Harry learned Slytherin's cunning and ambition, developing a strategic mind that would have made him an even more dangerous opponent to Voldemort. The house stereotypes crumbled as the wizarding world watched in shock.

⚡ **The New Reality**
Harry would have approached his battles with Voldemort using subtlety and strategy rather than brute force. He might have become a darker, more complex hero - one who understood both light and shadow. The final battle would have been a masterclass in cunning rather than courage.

🌟 **The Lesson**
True heroism isn't about which house you're in, but how you use your gifts to fight for what's right.`

const lukeSkywalkerStory = `# 🎬 What If Luke Skywalker Joined the Dark Side?

🔥 **The Moment Everything Changed**
Luke's lightsaber ignited with a crimson blade as he accepted his father's offer. "Join me, and together we can rule the galaxy." In that moment, the last hope of the Jedi died, and the galaxy plunged into eternal darkness.

💥 **The Ripple Effect**
Princess Leia became the Rebellion's broken leader, while Han Solo faced impossible choices between love and loyalty. Darth Luke became the Empire's most terrifying weapon - a Jedi who knew all the Rebellion's secrets. The Millennium Falcon's missions failed without Luke's Force abilities.

⚡ **The New Reality**
Palpatine achieved his ultimate victory with both Vader and Luke under his control. The Empire ruled with an iron fist, crushing all resistance. Yet, even in darkness, Luke's love for his sister might have been the spark of redemption that could save the galaxy.

🌟 **The Lesson**
The path to darkness is paved with good intentions, but even the darkest souls can find their way back to the light.`

// genericStory takes the prompt as its only format argument
const genericStory = `# 🎬 What If %s?

🔥 **The Moment Everything Changed**
In a single heartbeat, the universe shifted. This pivotal moment sent shockwaves through reality, transforming everything we thought we knew. The impossible became possible, and the ordinary became extraordinary.

💥 **The Ripple Effect**
The consequences were immediate and devastating. Relationships shattered, alliances crumbled, and the very fabric of existence trembled. What was once certain became uncertain, and what was impossible suddenly seemed inevitable.

⚡ **The New Reality**
In this brave new world, everything was different. The characters we knew had to adapt, evolve, and find new ways to survive. Some rose to the challenge, while others fell into darkness. The stakes were higher than ever before.

🌟 **The Lesson**
Sometimes the greatest stories are born from the moments when everything changes. It's not about what we lose, but what we discover about ourselves in the process.`

const ironManComic = `# 🎬 What If Iron Man Died in the First Avengers Movie?

## Page 1: The Final Sacrifice
**Panel 1:** Tony Stark in his Iron Man suit, flying toward the Chitauri portal with a nuclear missile. His arc reactor is flickering dangerously.
*Narration:* "In the skies above New York, Tony Stark made the ultimate choice..."
*Tony:* "Jarvis, divert all power to the thrusters!"

**Panel 2:** The missile explodes inside the portal, creating a massive light show. The portal begins to collapse.
*Narration:* "The explosion was beautiful and terrible all at once."

**Panel 3:** Iron Man's suit falling from the sky, the arc reactor completely dark.
*Narration:* "And just like that, Earth's greatest defender was gone."

## Page 2: The Aftermath
**Panel 1:** The Avengers gathered around Tony's empty suit, their faces filled with shock and grief.
*Captain America:* "We could have done more... we should have done more."

**Panel 2:** Pepper Potts collapsing to her knees, tears streaming down her face.
*Pepper:* "Tony... no... please, no..."

**Panel 3:** Thor looking up at the sky, his hammer hanging limply at his side.
*Thor:* "Even gods can feel the weight of mortal loss."

## Page 3: A World Without Iron Man
**Panel 1:** Stark Industries headquarters, now with a memorial wall dedicated to Tony.
*Narration:* "The world tried to move on, but Tony's absence was felt everywhere."

**Panel 2:** The Avengers in a much smaller, less advanced headquarters.
*Captain America:* "We have to adapt. We can't rely on technology anymore."

**Panel 3:** A young Peter Parker looking at an old Iron Man poster on his wall.
*Peter:* "I wish I could have met him... learned from him..."

## Page 4: The New Threats
**Panel 1:** Ultron never being created - the Avengers fighting a different enemy.
*Narration:* "Without Tony's genius, some threats never emerged... but others became stronger."

**Panel 2:** The Avengers struggling against a powerful enemy without their usual tech support.
*Black Widow:* "We're fighting with one hand tied behind our backs!"

**Panel 3:** Thanos appearing in the distance, his army much larger than before.
*Thanos:* "Without their technological edge, they are nothing."

## Page 5: The Legacy Lives On
**Panel 1:** Peter Parker creating his own suit, inspired by Tony's legacy.
*Peter:* "I may not be Iron Man, but I can still be a hero."

**Panel 2:** The Avengers learning to fight as a team without relying on technology.
*Captain America:* "Sometimes the greatest strength comes from within."

**Panel 3:** A new generation of heroes rising up, inspired by Tony's sacrifice.
*Narration:* "Tony Stark may be gone, but his legacy will live forever."

## Page 6: The Lesson
**Panel 1:** A beautiful sunset over New York, with Iron Man's silhouette in the clouds.
*Narration:* "The greatest heroes are those who teach us that sacrifice is the ultimate form of heroism."

**Panel 2:** The Avengers standing together, stronger than ever.
*Captain America:* "We honor Tony by being the heroes he knew we could be."

**Panel 3:** The words "Tony Stark was here" written on a wall, with a small arc reactor design.
*Narration:* "And somewhere in the multiverse, Tony Stark is still fighting the good fight."`

const harryPotterComic = `# 🎬 What If Harry Potter Was Sorted Into Slytherin?

## Page 1: The Sorting Ceremony
**Panel 1:** The Great Hall, filled with students. The Sorting Hat is on Harry's head, and everyone is watching intently.
*Narration:* "The moment that would change everything..."

**Panel 2:** The Sorting Hat's mouth opening wide.
*Sorting Hat:* "SLYTHERIN!"

**Panel 3:** Gasps from the crowd. Harry looks confused as he walks toward the Slytherin table.
*Narration:* "The Boy Who Lived... in Slytherin?"

## Page 2: The Slytherin Welcome
**Panel 1:** Harry sitting at the Slytherin table, surrounded by curious and suspicious faces.
*Draco:* "Well, well... the famous Harry Potter. Welcome to the house of ambition."

**Panel 2:** Harry looking around at the green and silver decorations, feeling out of place.
*Harry:* "This... this wasn't what I expected."

**Panel 3:** Ron and Hermione looking over from the Gryffindor table, confusion on their faces.
*Ron:* "Harry? In Slytherin? How is that possible?"

## Page 3: Learning New Ways
**Panel 1:** Harry in Slytherin common room, studying with other Slytherins.
*Narration:* "Harry began to learn what it meant to be a Slytherin."

**Panel 2:** Harry practicing spells with a more strategic approach.
*Harry:* "Maybe there's more to magic than just bravery..."

**Panel 3:** Harry forming friendships with other Slytherins, including some unexpected allies.
*Slytherin Student:* "You're not what we expected, Potter."

## Page 4: The Darker Path
**Panel 1:** Harry being tempted by power and prestige, the Slytherin influence growing.
*Narration:* "The house of ambition began to shape Harry in unexpected ways."

**Panel 2:** Harry using more cunning and strategy in his conflicts with Voldemort.
*Harry:* "Sometimes the best attack is the one they don't see coming."

**Panel 3:** Voldemort looking surprised as Harry outsmarts him with Slytherin tactics.
*Voldemort:* "You fight like a Slytherin... interesting."

## Page 5: The True Hero
**Panel 1:** Harry standing between light and darkness, his Slytherin cunning and his inherent goodness at war.
*Narration:* "But Harry's heart remained true, even as his methods changed."

**Panel 2:** Harry using Slytherin strategy to defeat Voldemort in a final battle.
*Harry:* "I may be a Slytherin, but I fight for what's right!"

**Panel 3:** The wizarding world celebrating, with Harry wearing Slytherin colors proudly.
*Narration:* "Harry Potter proved that greatness can come from any house."

## Page 6: A New Legacy
**Panel 1:** Future students being sorted, with Harry's story inspiring them.
*Narration:* "Harry's journey changed how the wizarding world saw Slytherin."

**Panel 2:** Harry as an adult, teaching that house affiliation doesn't determine character.
*Harry:* "It's not about which house you're in, but how you use your gifts."

**Panel 3:** A new generation of Slytherins, proud and heroic.
*Narration:* "And so, the legacy of Harry Potter, the Slytherin hero, lived on."`

const lukeSkywalkerComic = `# 🎬 What If Luke Skywalker Joined the Dark Side?

## Page 1: The Offer
**Panel 1:** Cloud City's gantry, wind howling. Luke clings to the rail, his hand gone, Vader looming above him.
*Narration:* "At the edge of the abyss, a son faced his father."
*Vader:* "Join me, and together we can rule the galaxy."

**Panel 2:** Close on Luke's face, torn between horror and temptation.
*Luke:* "Father..."

**Panel 3:** Luke reaching up and taking Vader's gloved hand.
*Narration:* "And this time, he did not let go of the rail. He let go of the light."

## Page 2: A Crimson Blade
**Panel 1:** The Emperor's throne room. Luke kneels, now dressed in black.
*Palpatine:* "Rise, Lord Skywalker."

**Panel 2:** Luke igniting a new lightsaber. The blade glows red.
*Narration:* "The last hope of the Jedi burned crimson."

**Panel 3:** Vader standing behind him, silent and unreadable.
*Vader:* "It is done, Master."

## Page 3: The Rebellion Breaks
**Panel 1:** Leia in the rebel command center, staring at a holo-report of Luke leading a Star Destroyer fleet.
*Leia:* "No. Not Luke. Not him."

**Panel 2:** Han slamming his fist on a console.
*Han:* "Then we go get him back. Whatever it takes."

**Panel 3:** Admiral Ackbar pointing at a map littered with burning rebel bases.
*Ackbar:* "He knows every hiding place we have."

## Page 4: Darth Luke
**Panel 1:** Luke walking through the ruins of a rebel outpost, troopers saluting him.
*Narration:* "He knew their codes, their pilots, their fears."

**Panel 2:** The Millennium Falcon caught in a tractor beam.
*Chewbacca:* "Rrrraaaarrgh!"

**Panel 3:** Luke facing Han in a hangar, saber lit.
*Luke:* "You should have stayed on Tatooine, Han."

## Page 5: A Sister's Voice
**Panel 1:** Leia stepping between Han and Luke, unarmed.
*Leia:* "You told me once that there was still good in him. There's still good in you."

**Panel 2:** Luke's blade trembling inches from her.
*Narration:* "Even in darkness, a single bond can hold."

**Panel 3:** Palpatine's hologram flickering above them.
*Palpatine:* "Strike her down, my apprentice!"

## Page 6: The Way Back
**Panel 1:** Luke lowering his saber, the red light reflected in his tears.
*Luke:* "No. I am a Skywalker. Like my father before me."

**Panel 2:** Vader, far away on the Death Star, turning his head as if he felt it.
*Narration:* "Across the stars, a father felt his son return."

**Panel 3:** Luke, Leia and Han running toward the Falcon together.
*Narration:* "The path to darkness is paved with good intentions, but even the darkest souls can find their way back to the light."`

// genericComic takes the prompt as its only format argument
const genericComic = `# 🎬 What If %s?

## Page 1: The Moment of Change
**Panel 1:** A dramatic scene showing the pivotal moment when everything changes.
*Narration:* "In a single heartbeat, the universe shifted forever."

**Panel 2:** Characters reacting to the change, their faces filled with shock and confusion.
*Character:* "What just happened?"

**Panel 3:** The world beginning to transform around them.
*Narration:* "Nothing would ever be the same again."

## Page 2: The Ripple Effect
**Panel 1:** The consequences of the change spreading like waves.
*Narration:* "The effects were immediate and devastating."

**Panel 2:** Relationships being tested and alliances crumbling.
*Character:* "I don't know who to trust anymore!"

**Panel 3:** New challenges emerging that no one expected.
*Narration:* "Every choice had consequences."

## Page 3: Adaptation
**Panel 1:** Characters learning to survive in the new reality.
*Character:* "We have to adapt or we won't survive."

**Panel 2:** New alliances forming in unexpected places.
*Character:* "Sometimes enemies become friends."

**Panel 3:** The characters growing stronger through adversity.
*Narration:* "In crisis, true character is revealed."

## Page 4: The New Reality
**Panel 1:** The world transformed, showing how different everything has become.
*Narration:* "This was the new normal."

**Panel 2:** Characters finding new ways to achieve their goals.
*Character:* "We can't go back, so we move forward."

**Panel 3:** Unexpected heroes emerging from the chaos.
*Narration:* "New leaders rose from the ashes."

## Page 5: The Climax
**Panel 1:** A final confrontation or challenge that tests everything.
*Character:* "This is it. Everything we've been through leads to this moment."

**Panel 2:** The characters using everything they've learned to overcome the challenge.
*Character:* "Together, we can do this!"

**Panel 3:** Victory achieved through teamwork and determination.
*Narration:* "Sometimes the greatest victories come from the darkest times."

## Page 6: The Lesson
**Panel 1:** Characters reflecting on their journey and what they've learned.
*Character:* "We may have lost everything, but we gained something more valuable."

**Panel 2:** A hopeful future beginning to emerge from the chaos.
*Narration:* "The world was different, but perhaps it was better."

**Panel 3:** The characters looking toward the future with hope and determination.
*Narration:* "For in every ending, there is also a beginning."`
